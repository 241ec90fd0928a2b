package usecase

import (
	"context"
	"fmt"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"
)

// detailsResolver attaches reference summaries to claims, looking each id up once per call.
type detailsResolver struct {
	refs      interfaces.IReferenceDataRepository
	patients  map[int64]*entities.PatientSummary
	providers map[int64]*entities.ProviderSummary
	plans     map[int64]*entities.InsurancePlanSummary
}

func newDetailsResolver(refs interfaces.IReferenceDataRepository) *detailsResolver {
	return &detailsResolver{
		refs:      refs,
		patients:  map[int64]*entities.PatientSummary{},
		providers: map[int64]*entities.ProviderSummary{},
		plans:     map[int64]*entities.InsurancePlanSummary{},
	}
}

func (r *detailsResolver) resolve(ctx context.Context, c entities.Claim) (entities.ClaimDetails, error) {
	d := entities.ClaimDetails{Claim: c}

	if p, ok := r.patients[c.PatientID]; ok {
		d.Patient = p
	} else {
		p, err := r.refs.GetPatient(ctx, c.PatientID)
		if err != nil {
			return entities.ClaimDetails{}, fmt.Errorf("get patient %d: %w", c.PatientID, err)
		}
		r.patients[c.PatientID] = p
		d.Patient = p
	}

	if p, ok := r.providers[c.ProviderID]; ok {
		d.Provider = p
	} else {
		p, err := r.refs.GetProvider(ctx, c.ProviderID)
		if err != nil {
			return entities.ClaimDetails{}, fmt.Errorf("get provider %d: %w", c.ProviderID, err)
		}
		r.providers[c.ProviderID] = p
		d.Provider = p
	}

	if p, ok := r.plans[c.InsurancePlanID]; ok {
		d.Plan = p
	} else {
		p, err := r.refs.GetInsurancePlan(ctx, c.InsurancePlanID)
		if err != nil {
			return entities.ClaimDetails{}, fmt.Errorf("get insurance plan %d: %w", c.InsurancePlanID, err)
		}
		r.plans[c.InsurancePlanID] = p
		d.Plan = p
	}

	return d, nil
}

func (r *detailsResolver) resolveAll(ctx context.Context, claims []entities.Claim) ([]entities.ClaimDetails, error) {
	out := make([]entities.ClaimDetails, 0, len(claims))
	for _, c := range claims {
		d, err := r.resolve(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
