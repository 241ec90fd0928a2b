package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const claimCols = `id, claim_number, patient_id, provider_id, insurance_plan_id, claim_type, status,
	priority_level, total_amount::text, approved_amount::text, patient_responsibility::text,
	insurance_payment::text, service_date, diagnosis_codes, procedure_codes, submitted_date,
	processed_date, paid_date, assigned_adjuster_id, review_notes, denial_reason, created_at, updated_at`

const lineItemCols = `id, claim_id, line_number, procedure_code, procedure_description, diagnosis_code,
	service_date, quantity, unit_price::text, total_amount::text, allowed_amount::text,
	deductible_amount::text, copay_amount::text, coinsurance_amount::text, not_covered_amount::text,
	status, denial_reason, created_at`

// ClaimPostgresRepository persists claims in PostgreSQL.
//
// Money columns are NUMERIC(10,2); they travel as text in both directions so no
// precision is lost on the way to decimal.Decimal.
type ClaimPostgresRepository struct {
	pool *pgxpool.Pool
}

var (
	_ interfaces.IClaimRepository   = (*ClaimPostgresRepository)(nil)
	_ interfaces.ISequenceAllocator = (*ClaimPostgresRepository)(nil)
)

func NewClaimPostgresRepository(pool *pgxpool.Pool) *ClaimPostgresRepository {
	return &ClaimPostgresRepository{pool: pool}
}

func (r *ClaimPostgresRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return entities.Claim{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO claims (claim_number, patient_id, provider_id, insurance_plan_id, claim_type, status,
			priority_level, total_amount, approved_amount, patient_responsibility, insurance_payment,
			service_date, diagnosis_codes, procedure_codes, submitted_date, processed_date, paid_date,
			assigned_adjuster_id, review_notes, denial_reason, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		RETURNING id`,
		c.ClaimNumber, c.PatientID, c.ProviderID, c.InsurancePlanID, string(c.ClaimType), string(c.Status),
		c.PriorityLevel, c.TotalAmount.String(), nullableNumeric(c.ApprovedAmount),
		nullableNumeric(c.PatientResponsibility), nullableNumeric(c.InsurancePayment),
		c.ServiceDate, c.DiagnosisCodes, c.ProcedureCodes, c.SubmittedAt, c.ProcessedAt, c.PaidAt,
		c.AssignedAdjusterID, c.ReviewNotes, c.DenialReason, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "claim_number") {
			return entities.Claim{}, interfaces.ErrDuplicateClaimNumber
		}
		return entities.Claim{}, err
	}

	for i := range c.LineItems {
		li := &c.LineItems[i]
		li.ClaimID = c.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO claim_line_items (claim_id, line_number, procedure_code, procedure_description,
				diagnosis_code, service_date, quantity, unit_price, total_amount, allowed_amount,
				deductible_amount, copay_amount, coinsurance_amount, not_covered_amount, status,
				denial_reason, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
			RETURNING id`,
			li.ClaimID, li.LineNumber, li.ProcedureCode, li.ProcedureDescription, li.DiagnosisCode,
			li.ServiceDate, li.Quantity, li.UnitPrice.String(), li.TotalAmount.String(),
			nullableNumeric(li.AllowedAmount), li.DeductibleAmount.String(), li.CopayAmount.String(),
			li.CoinsuranceAmount.String(), li.NotCoveredAmount.String(), string(li.Status),
			li.DenialReason, li.CreatedAt,
		).Scan(&li.ID)
		if err != nil {
			return entities.Claim{}, fmt.Errorf("insert line item %d: %w", li.LineNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	return r.getOne(ctx, `SELECT `+claimCols+` FROM claims WHERE id = $1`, id)
}

func (r *ClaimPostgresRepository) GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error) {
	return r.getOne(ctx, `SELECT `+claimCols+` FROM claims WHERE claim_number = $1`, claimNumber)
}

func (r *ClaimPostgresRepository) getOne(ctx context.Context, sql string, arg any) (entities.Claim, error) {
	c, err := scanClaim(r.pool.QueryRow(ctx, sql, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	items, err := loadLineItems(ctx, r.pool, []int64{c.ID})
	if err != nil {
		return entities.Claim{}, err
	}
	c.LineItems = items[c.ID]
	return c, nil
}

// Update writes the whole mutable field set in one statement.
func (r *ClaimPostgresRepository) Update(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	updated, err := scanClaim(r.pool.QueryRow(ctx, `
		UPDATE claims SET status=$2, priority_level=$3, approved_amount=$4, patient_responsibility=$5,
			insurance_payment=$6, processed_date=$7, paid_date=$8, assigned_adjuster_id=$9,
			review_notes=$10, denial_reason=$11, updated_at=$12
		WHERE id = $1
		RETURNING `+claimCols,
		c.ID, string(c.Status), c.PriorityLevel, nullableNumeric(c.ApprovedAmount),
		nullableNumeric(c.PatientResponsibility), nullableNumeric(c.InsurancePayment),
		c.ProcessedAt, c.PaidAt, c.AssignedAdjusterID, c.ReviewNotes, c.DenialReason, c.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Claim{}, nil
	}
	if err != nil {
		return entities.Claim{}, err
	}
	items, err := loadLineItems(ctx, r.pool, []int64{updated.ID})
	if err != nil {
		return entities.Claim{}, err
	}
	updated.LineItems = items[updated.ID]
	return updated, nil
}

func (r *ClaimPostgresRepository) UpdateLineItem(ctx context.Context, li entities.LineItem) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE claim_line_items SET status = $2, denial_reason = $3 WHERE id = $1`,
		li.ID, string(li.Status), li.DenialReason)
	return err
}

func (r *ClaimPostgresRepository) List(ctx context.Context, f entities.ClaimFilter) ([]entities.Claim, int, error) {
	f = f.Normalized()
	where, args := claimFilterSQL(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM claims`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM claims%s ORDER BY submitted_date DESC, id DESC LIMIT $%d OFFSET $%d`,
			claimCols, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	claims := []entities.Claim{}
	ids := []int64{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, 0, err
		}
		claims = append(claims, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	items, err := loadLineItems(ctx, r.pool, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range claims {
		claims[i].LineItems = items[claims[i].ID]
	}
	return claims, total, nil
}

func claimFilterSQL(f entities.ClaimFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.PatientID > 0 {
		add("patient_id = $%d", f.PatientID)
	}
	if f.ProviderID > 0 {
		add("provider_id = $%d", f.ProviderID)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.ClaimType != "" {
		add("claim_type = $%d", string(f.ClaimType))
	}
	if f.StartDate != nil {
		add("service_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("service_date <= $%d", *f.EndDate)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *ClaimPostgresRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM claims WHERE claim_number LIKE $1 || '%'`, prefix).Scan(&n)
	return n, err
}

func (r *ClaimPostgresRepository) Next(ctx context.Context, bucket string) (int64, error) {
	var v int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO claim_number_sequences (bucket, last_value) VALUES ($1, 1)
		ON CONFLICT (bucket) DO UPDATE SET last_value = claim_number_sequences.last_value + 1
		RETURNING last_value`, bucket).Scan(&v)
	return v, err
}

func (r *ClaimPostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanClaim(row pgx.Row) (entities.Claim, error) {
	var (
		c                                      entities.Claim
		claimType, status, total               string
		approved, responsibility, insurancePay *string
	)
	err := row.Scan(&c.ID, &c.ClaimNumber, &c.PatientID, &c.ProviderID, &c.InsurancePlanID,
		&claimType, &status, &c.PriorityLevel, &total, &approved, &responsibility, &insurancePay,
		&c.ServiceDate, &c.DiagnosisCodes, &c.ProcedureCodes, &c.SubmittedAt, &c.ProcessedAt,
		&c.PaidAt, &c.AssignedAdjusterID, &c.ReviewNotes, &c.DenialReason, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return entities.Claim{}, err
	}
	c.ClaimType = entities.ClaimType(claimType)
	c.Status = entities.ClaimStatus(status)
	c.TotalAmount = parseDecimal(total)
	c.ApprovedAmount = parseOptionalDecimal(deref(approved))
	c.PatientResponsibility = parseOptionalDecimal(deref(responsibility))
	c.InsurancePayment = parseOptionalDecimal(deref(insurancePay))
	c.SubmittedAt = c.SubmittedAt.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	c.ProcessedAt = utcPtr(c.ProcessedAt)
	c.PaidAt = utcPtr(c.PaidAt)
	return c, nil
}

func loadLineItems(ctx context.Context, q queryable, claimIDs []int64) (map[int64][]entities.LineItem, error) {
	out := make(map[int64][]entities.LineItem, len(claimIDs))
	if len(claimIDs) == 0 {
		return out, nil
	}
	rows, err := q.Query(ctx,
		`SELECT `+lineItemCols+` FROM claim_line_items WHERE claim_id = ANY($1) ORDER BY claim_id, line_number`,
		claimIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			li                                                  entities.LineItem
			unit, total, deductible, copay, coinsurance, notCov string
			allowed                                             *string
			status                                              string
		)
		if err := rows.Scan(&li.ID, &li.ClaimID, &li.LineNumber, &li.ProcedureCode,
			&li.ProcedureDescription, &li.DiagnosisCode, &li.ServiceDate, &li.Quantity,
			&unit, &total, &allowed, &deductible, &copay, &coinsurance, &notCov,
			&status, &li.DenialReason, &li.CreatedAt); err != nil {
			return nil, err
		}
		li.UnitPrice = parseDecimal(unit)
		li.TotalAmount = parseDecimal(total)
		li.AllowedAmount = parseOptionalDecimal(deref(allowed))
		li.DeductibleAmount = parseDecimal(deductible)
		li.CopayAmount = parseDecimal(copay)
		li.CoinsuranceAmount = parseDecimal(coinsurance)
		li.NotCoveredAmount = parseDecimal(notCov)
		li.Status = entities.ClaimStatus(status)
		li.CreatedAt = li.CreatedAt.UTC()
		out[li.ClaimID] = append(out[li.ClaimID], li)
	}
	return out, rows.Err()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
