package usecase

import (
	"context"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPaymentUseCase posts settlements against claims.
//
//   - POST /claims/{id}/payment => ProcessPayment()
type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, in ProcessPaymentInput) (entities.Claim, error)
}

// ProcessPaymentInput carries raw amounts. An amount that does not parse is skipped and
// the claim keeps whatever it had before.
type ProcessPaymentInput struct {
	ClaimID               int64
	ApprovedAmount        string
	PatientResponsibility string
	InsurancePayment      string
}

type PaymentUseCase struct {
	repo   interfaces.IClaimRepository
	events interfaces.IEventEmitter
	log    *zap.Logger
	opts   options
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IClaimRepository, events interfaces.IEventEmitter, log *zap.Logger, opts ...Option) *PaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentUseCase{repo: repo, events: events, log: log, opts: buildOptions(opts)}
}

// ProcessPayment forces the claim to paid from any status; the transition guard does not apply.
func (u *PaymentUseCase) ProcessPayment(ctx context.Context, in ProcessPaymentInput) (entities.Claim, error) {
	u.log.Info("PaymentUseCase.ProcessPayment called", zap.Int64("claim_id", in.ClaimID))

	if in.ClaimID <= 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	claim, err := u.repo.GetByID(ctx, in.ClaimID)
	if err != nil {
		return entities.Claim{}, err
	}
	if claim.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}

	p := entities.Payment{
		ApprovedAmount:        entities.OptionalAmount(in.ApprovedAmount),
		PatientResponsibility: entities.OptionalAmount(in.PatientResponsibility),
		InsurancePayment:      entities.OptionalAmount(in.InsurancePayment),
	}
	if p.ApprovedAmount == nil && in.ApprovedAmount != "" {
		u.log.Debug("approved amount skipped", zap.String("raw", in.ApprovedAmount))
	}
	if p.PatientResponsibility == nil && in.PatientResponsibility != "" {
		u.log.Debug("patient responsibility skipped", zap.String("raw", in.PatientResponsibility))
	}
	if p.InsurancePayment == nil && in.InsurancePayment != "" {
		u.log.Debug("insurance payment skipped", zap.String("raw", in.InsurancePayment))
	}

	previous := claim.Status
	now := u.opts.now().UTC()
	claim.ApplyPayment(p, now)

	updated, err := u.repo.Update(ctx, claim)
	if err != nil {
		return entities.Claim{}, err
	}
	if updated.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}

	emitClaimEvent(ctx, u.events, u.log, entities.EventClaimPaymentProcessed, updated, now)
	u.log.Info("claim payment processed",
		zap.Int64("claim_id", updated.ID),
		zap.String("from", string(previous)),
	)
	return updated, nil
}
