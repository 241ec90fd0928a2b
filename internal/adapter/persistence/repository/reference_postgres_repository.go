package repository

import (
	"context"
	"errors"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferencePostgresRepository reads patients, providers and plans owned by other services.
type ReferencePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IReferenceDataRepository = (*ReferencePostgresRepository)(nil)

func NewReferencePostgresRepository(pool *pgxpool.Pool) *ReferencePostgresRepository {
	return &ReferencePostgresRepository{pool: pool}
}

func (r *ReferencePostgresRepository) exists(ctx context.Context, sql string, id int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, sql, id).Scan(&ok)
	return ok, err
}

func (r *ReferencePostgresRepository) PatientExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`, id)
}

func (r *ReferencePostgresRepository) ProviderExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM healthcare_providers WHERE id = $1)`, id)
}

func (r *ReferencePostgresRepository) InsurancePlanExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM insurance_plans WHERE id = $1)`, id)
}

func (r *ReferencePostgresRepository) GetPatient(ctx context.Context, id int64) (*entities.PatientSummary, error) {
	var (
		p             entities.PatientSummary
		gender, phone *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.patient_id, u.first_name, u.last_name, p.date_of_birth, p.gender, p.phone_number
		FROM patients p JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`, id,
	).Scan(&p.ID, &p.PatientCode, &p.FirstName, &p.LastName, &p.DateOfBirth, &gender, &phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Gender = deref(gender)
	p.PhoneNumber = deref(phone)
	return &p, nil
}

func (r *ReferencePostgresRepository) GetProvider(ctx context.Context, id int64) (*entities.ProviderSummary, error) {
	var (
		p     entities.ProviderSummary
		phone *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, provider_id, provider_name, provider_type, phone_number, specialties
		FROM healthcare_providers WHERE id = $1`, id,
	).Scan(&p.ID, &p.ProviderCode, &p.ProviderName, &p.ProviderType, &phone, &p.Specialties)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.PhoneNumber = deref(phone)
	return &p, nil
}

func (r *ReferencePostgresRepository) GetInsurancePlan(ctx context.Context, id int64) (*entities.InsurancePlanSummary, error) {
	var p entities.InsurancePlanSummary
	err := r.pool.QueryRow(ctx, `
		SELECT ip.id, ip.plan_name, ip.plan_code, ip.plan_type, ic.company_name
		FROM insurance_plans ip JOIN insurance_companies ic ON ic.id = ip.insurance_company_id
		WHERE ip.id = $1`, id,
	).Scan(&p.ID, &p.PlanName, &p.PlanCode, &p.PlanType, &p.CompanyName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
