package interfaces

import (
	"context"

	"claims_processor/internal/domain/entities"
)

// IReferenceDataRepository answers existence checks and summary lookups for the records a
// claim points at. Summary lookups return nil and no error when the id does not resolve.
type IReferenceDataRepository interface {
	PatientExists(ctx context.Context, id int64) (bool, error)
	ProviderExists(ctx context.Context, id int64) (bool, error)
	InsurancePlanExists(ctx context.Context, id int64) (bool, error)

	GetPatient(ctx context.Context, id int64) (*entities.PatientSummary, error)
	GetProvider(ctx context.Context, id int64) (*entities.ProviderSummary, error)
	GetInsurancePlan(ctx context.Context, id int64) (*entities.InsurancePlanSummary, error)
}
