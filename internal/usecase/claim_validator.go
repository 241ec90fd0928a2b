package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrProviderNotFound       = errors.New("healthcare provider not found")
	ErrInsurancePlanNotFound  = errors.New("insurance plan not found")
	ErrInvalidClaimType       = errors.New("invalid claim type")
	ErrInvalidServiceDate     = errors.New("invalid service date format")
	ErrFutureServiceDate      = errors.New("service date cannot be in the future")
	ErrInvalidTotalAmount     = errors.New("invalid total amount format")
	ErrReferenceLookupFailure = errors.New("reference data lookup failed")
)

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// SubmitClaimInput is a submission as received at the transport boundary.
type SubmitClaimInput struct {
	PatientID       int64
	ProviderID      int64
	InsurancePlanID int64
	ClaimType       string
	TotalAmount     string
	ServiceDate     string
	DiagnosisCodes  []string
	ProcedureCodes  []string
	PriorityLevel   int
	LineItems       []LineItemInput
}

// ValidatedSubmission holds the values the validator had to parse anyway.
type ValidatedSubmission struct {
	ClaimType   entities.ClaimType
	ServiceDate time.Time
}

// ClaimValidator runs the submission checks in a fixed order and stops at the first failure.
//
// Order: patient, provider, insurance plan, claim type, service date format, service date
// not after today. Only reference lookups touch the store; nothing is written.
type ClaimValidator struct {
	refs interfaces.IReferenceDataRepository
	now  Clock
}

func NewClaimValidator(refs interfaces.IReferenceDataRepository, now Clock) *ClaimValidator {
	if now == nil {
		now = time.Now
	}
	return &ClaimValidator{refs: refs, now: now}
}

func (v *ClaimValidator) Validate(ctx context.Context, in SubmitClaimInput) (ValidatedSubmission, error) {
	checks := []struct {
		exists   func(context.Context, int64) (bool, error)
		id       int64
		notFound error
	}{
		{v.refs.PatientExists, in.PatientID, ErrPatientNotFound},
		{v.refs.ProviderExists, in.ProviderID, ErrProviderNotFound},
		{v.refs.InsurancePlanExists, in.InsurancePlanID, ErrInsurancePlanNotFound},
	}
	for _, c := range checks {
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return ValidatedSubmission{}, fmt.Errorf("%w: %v", ErrReferenceLookupFailure, err)
		}
		if !ok {
			return ValidatedSubmission{}, c.notFound
		}
	}

	claimType, ok := entities.ParseClaimType(in.ClaimType)
	if !ok {
		return ValidatedSubmission{}, ErrInvalidClaimType
	}

	serviceDate, err := entities.ParseDate(in.ServiceDate)
	if err != nil {
		return ValidatedSubmission{}, ErrInvalidServiceDate
	}
	if serviceDate.After(entities.DateOf(v.now())) {
		return ValidatedSubmission{}, ErrFutureServiceDate
	}

	return ValidatedSubmission{ClaimType: claimType, ServiceDate: serviceDate}, nil
}
