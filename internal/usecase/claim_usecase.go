package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidClaimStatus = errors.New("invalid claim status")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrInvalidProviderID  = errors.New("invalid provider id")
)

// IClaimUseCase exposes the claim lifecycle and query operations.
//
//   - POST  /claims                                  => SubmitClaim()
//   - GET   /claims/{id}, /claims/number/{number}    => GetClaim()
//   - PATCH /claims/{id}/status                      => UpdateClaimStatus()
//   - PATCH /claims/{id}/line-items/{n}/status       => UpdateLineItemStatus()
//   - GET   /claims                                  => ListClaims()
//   - GET   /providers/{id}/claims                   => GetClaimsByProvider()
type IClaimUseCase interface {
	SubmitClaim(ctx context.Context, in SubmitClaimInput) (entities.Claim, error)
	GetClaim(ctx context.Context, lookup ClaimLookup) (entities.ClaimDetails, error)
	UpdateClaimStatus(ctx context.Context, in UpdateClaimStatusInput) (entities.Claim, error)
	UpdateLineItemStatus(ctx context.Context, in UpdateLineItemStatusInput) (entities.LineItem, error)
	ListClaims(ctx context.Context, in ListClaimsInput) (ClaimPage, error)
	GetClaimsByProvider(ctx context.Context, in ProviderClaimsInput) (ClaimPage, error)
}

// ClaimLookup addresses one claim. A positive ID wins over Number.
type ClaimLookup struct {
	ID     int64
	Number string
}

type UpdateClaimStatusInput struct {
	ClaimID      int64
	Status       string
	ReviewNotes  string
	DenialReason string
	AdjusterID   int64
}

type UpdateLineItemStatusInput struct {
	ClaimID      int64
	LineNumber   int
	Status       string
	DenialReason string
}

// ListClaimsInput carries raw query values. Filters that do not parse are ignored.
type ListClaimsInput struct {
	PatientID int64
	Status    string
	ClaimType string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type ProviderClaimsInput struct {
	ProviderID int64
	Status     string
	Limit      int
	Offset     int
}

// ClaimPage is one window of a listing. TotalCount ignores pagination.
type ClaimPage struct {
	Claims     []entities.ClaimDetails
	TotalCount int
}

type ClaimUseCase struct {
	repo      interfaces.IClaimRepository
	refs      interfaces.IReferenceDataRepository
	validator *ClaimValidator
	numbers   *ClaimNumberGenerator
	lineItems *LineItemAggregator
	guard     TransitionGuard
	events    interfaces.IEventEmitter
	log       *zap.Logger
	opts      options
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(
	repo interfaces.IClaimRepository,
	refs interfaces.IReferenceDataRepository,
	numbers *ClaimNumberGenerator,
	guard TransitionGuard,
	events interfaces.IEventEmitter,
	log *zap.Logger,
	opts ...Option,
) *ClaimUseCase {
	o := buildOptions(opts)
	if guard == nil {
		guard = PermissiveTransitions
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ClaimUseCase{
		repo:      repo,
		refs:      refs,
		validator: NewClaimValidator(refs, o.now),
		numbers:   numbers,
		lineItems: NewLineItemAggregator(o.now),
		guard:     guard,
		events:    events,
		log:       log,
		opts:      o,
	}
}

func (u *ClaimUseCase) SubmitClaim(ctx context.Context, in SubmitClaimInput) (entities.Claim, error) {
	u.log.Info("ClaimUseCase.SubmitClaim called",
		zap.Int64("patient_id", in.PatientID),
		zap.Int64("provider_id", in.ProviderID),
		zap.Int("line_items", len(in.LineItems)),
	)

	v, err := u.validator.Validate(ctx, in)
	if err != nil {
		return entities.Claim{}, err
	}

	total, err := entities.ParseAmount(in.TotalAmount)
	if err != nil {
		return entities.Claim{}, ErrInvalidTotalAmount
	}

	items, err := u.lineItems.Normalize(in.LineItems, v.ServiceDate)
	if err != nil {
		return entities.Claim{}, err
	}

	priority := in.PriorityLevel
	if priority <= 0 {
		priority = entities.DefaultPriorityLevel
	}

	now := u.opts.now().UTC()
	claim := entities.Claim{
		PatientID:       in.PatientID,
		ProviderID:      in.ProviderID,
		InsurancePlanID: in.InsurancePlanID,
		ClaimType:       v.ClaimType,
		Status:          entities.ClaimStatusSubmitted,
		PriorityLevel:   priority,
		TotalAmount:     total,
		ServiceDate:     v.ServiceDate,
		DiagnosisCodes:  cleanCodes(in.DiagnosisCodes),
		ProcedureCodes:  cleanCodes(in.ProcedureCodes),
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
		LineItems:       items,
	}

	var created entities.Claim
	for attempt := 1; ; attempt++ {
		number, err := u.numbers.Next(ctx)
		if err != nil {
			return entities.Claim{}, fmt.Errorf("allocate claim number: %w", err)
		}
		claim.ClaimNumber = number

		created, err = u.repo.Create(ctx, claim)
		if err == nil {
			break
		}
		if errors.Is(err, interfaces.ErrDuplicateClaimNumber) && attempt < u.opts.claimNumberAttempts {
			u.log.Warn("claim number collision, retrying",
				zap.String("claim_number", number),
				zap.Int("attempt", attempt),
			)
			continue
		}
		return entities.Claim{}, err
	}

	emitClaimEvent(ctx, u.events, u.log, entities.EventClaimSubmitted, created, now)
	u.log.Info("claim submitted",
		zap.Int64("claim_id", created.ID),
		zap.String("claim_number", created.ClaimNumber),
	)
	return created, nil
}

func (u *ClaimUseCase) GetClaim(ctx context.Context, lookup ClaimLookup) (entities.ClaimDetails, error) {
	claim, err := u.find(ctx, lookup)
	if err != nil {
		return entities.ClaimDetails{}, err
	}
	return newDetailsResolver(u.refs).resolve(ctx, claim)
}

func (u *ClaimUseCase) UpdateClaimStatus(ctx context.Context, in UpdateClaimStatusInput) (entities.Claim, error) {
	u.log.Info("ClaimUseCase.UpdateClaimStatus called",
		zap.Int64("claim_id", in.ClaimID),
		zap.String("status", in.Status),
	)

	claim, err := u.find(ctx, ClaimLookup{ID: in.ClaimID})
	if err != nil {
		return entities.Claim{}, err
	}

	status, ok := entities.ParseClaimStatus(in.Status)
	if !ok {
		return entities.Claim{}, ErrInvalidClaimStatus
	}

	previous := claim.Status
	if err := u.guard(previous, status); err != nil {
		return entities.Claim{}, err
	}

	now := u.opts.now().UTC()
	claim.ApplyStatusChange(entities.StatusChange{
		Status:       status,
		ReviewNotes:  strings.TrimSpace(in.ReviewNotes),
		DenialReason: strings.TrimSpace(in.DenialReason),
		AdjusterID:   in.AdjusterID,
	}, now)

	updated, err := u.repo.Update(ctx, claim)
	if err != nil {
		return entities.Claim{}, err
	}
	if updated.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}

	emitClaimEvent(ctx, u.events, u.log, entities.EventClaimStatusChanged, updated, now)
	u.log.Info("claim status changed",
		zap.Int64("claim_id", updated.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}

func (u *ClaimUseCase) UpdateLineItemStatus(ctx context.Context, in UpdateLineItemStatusInput) (entities.LineItem, error) {
	claim, err := u.find(ctx, ClaimLookup{ID: in.ClaimID})
	if err != nil {
		return entities.LineItem{}, err
	}

	status, ok := entities.ParseClaimStatus(in.Status)
	if !ok {
		return entities.LineItem{}, ErrInvalidClaimStatus
	}

	li := claim.LineItemByNumber(in.LineNumber)
	if li == nil {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	li.Status = status
	if reason := strings.TrimSpace(in.DenialReason); reason != "" {
		li.DenialReason = reason
	}

	if err := u.repo.UpdateLineItem(ctx, *li); err != nil {
		return entities.LineItem{}, err
	}
	return *li, nil
}

func (u *ClaimUseCase) ListClaims(ctx context.Context, in ListClaimsInput) (ClaimPage, error) {
	f := entities.ClaimFilter{PatientID: in.PatientID, Limit: in.Limit, Offset: in.Offset}
	if s, ok := entities.ParseClaimStatus(in.Status); ok {
		f.Status = s
	}
	if t, ok := entities.ParseClaimType(in.ClaimType); ok {
		f.ClaimType = t
	}
	if d, err := entities.ParseDate(in.StartDate); err == nil {
		f.StartDate = &d
	}
	if d, err := entities.ParseDate(in.EndDate); err == nil {
		f.EndDate = &d
	}
	return u.list(ctx, f.Normalized())
}

func (u *ClaimUseCase) GetClaimsByProvider(ctx context.Context, in ProviderClaimsInput) (ClaimPage, error) {
	if in.ProviderID <= 0 {
		return ClaimPage{}, ErrInvalidProviderID
	}
	f := entities.ClaimFilter{ProviderID: in.ProviderID, Limit: in.Limit, Offset: in.Offset}
	if s, ok := entities.ParseClaimStatus(in.Status); ok {
		f.Status = s
	}
	return u.list(ctx, f.Normalized())
}

func (u *ClaimUseCase) list(ctx context.Context, f entities.ClaimFilter) (ClaimPage, error) {
	claims, total, err := u.repo.List(ctx, f)
	if err != nil {
		return ClaimPage{}, err
	}
	details, err := newDetailsResolver(u.refs).resolveAll(ctx, claims)
	if err != nil {
		return ClaimPage{}, err
	}
	return ClaimPage{Claims: details, TotalCount: total}, nil
}

func (u *ClaimUseCase) find(ctx context.Context, lookup ClaimLookup) (entities.Claim, error) {
	var (
		claim entities.Claim
		err   error
	)
	number := strings.TrimSpace(lookup.Number)
	switch {
	case lookup.ID > 0:
		claim, err = u.repo.GetByID(ctx, lookup.ID)
	case number != "":
		claim, err = u.repo.GetByNumber(ctx, number)
	default:
		return entities.Claim{}, ErrClaimNotFound
	}
	if err != nil {
		return entities.Claim{}, err
	}
	if claim.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	return claim, nil
}

func cleanCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
