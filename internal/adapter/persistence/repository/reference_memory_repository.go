package repository

import (
	"context"
	"sync"
	"time"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"
)

// ReferenceMemoryRepository holds patients, providers and insurance plans in memory.
type ReferenceMemoryRepository struct {
	mu        sync.RWMutex
	patients  map[int64]entities.PatientSummary
	providers map[int64]entities.ProviderSummary
	plans     map[int64]entities.InsurancePlanSummary
}

var _ interfaces.IReferenceDataRepository = (*ReferenceMemoryRepository)(nil)

func NewReferenceMemoryRepository() *ReferenceMemoryRepository {
	return &ReferenceMemoryRepository{
		patients:  map[int64]entities.PatientSummary{},
		providers: map[int64]entities.ProviderSummary{},
		plans:     map[int64]entities.InsurancePlanSummary{},
	}
}

func (r *ReferenceMemoryRepository) PutPatient(p entities.PatientSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients[p.ID] = p
}

func (r *ReferenceMemoryRepository) PutProvider(p entities.ProviderSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Specialties = append([]string{}, p.Specialties...)
	r.providers[p.ID] = p
}

func (r *ReferenceMemoryRepository) PutInsurancePlan(p entities.InsurancePlanSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[p.ID] = p
}

// SeedDemo loads a small fixed data set for local runs.
func (r *ReferenceMemoryRepository) SeedDemo() {
	r.PutPatient(entities.PatientSummary{
		ID: 1, PatientCode: "PAT-000001", FirstName: "Maria", LastName: "Silva",
		DateOfBirth: time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC), Gender: "female", PhoneNumber: "555-0101",
	})
	r.PutPatient(entities.PatientSummary{
		ID: 2, PatientCode: "PAT-000002", FirstName: "John", LastName: "Carter",
		DateOfBirth: time.Date(1972, 11, 3, 0, 0, 0, 0, time.UTC), Gender: "male", PhoneNumber: "555-0102",
	})
	r.PutProvider(entities.ProviderSummary{
		ID: 1, ProviderCode: "PRV-000001", ProviderName: "Downtown Family Clinic",
		ProviderType: "clinic", PhoneNumber: "555-0201", Specialties: []string{"family medicine"},
	})
	r.PutProvider(entities.ProviderSummary{
		ID: 2, ProviderCode: "PRV-000002", ProviderName: "Bright Smile Dental",
		ProviderType: "dentist", PhoneNumber: "555-0202", Specialties: []string{"general dentistry", "orthodontics"},
	})
	r.PutInsurancePlan(entities.InsurancePlanSummary{
		ID: 1, PlanName: "Silver PPO", PlanCode: "SPPO-01", PlanType: "ppo", CompanyName: "Acme Health",
	})
	r.PutInsurancePlan(entities.InsurancePlanSummary{
		ID: 2, PlanName: "Basic HMO", PlanCode: "BHMO-01", PlanType: "hmo", CompanyName: "Acme Health",
	})
}

func (r *ReferenceMemoryRepository) PatientExists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.patients[id]
	return ok, nil
}

func (r *ReferenceMemoryRepository) ProviderExists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[id]
	return ok, nil
}

func (r *ReferenceMemoryRepository) InsurancePlanExists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.plans[id]
	return ok, nil
}

func (r *ReferenceMemoryRepository) GetPatient(_ context.Context, id int64) (*entities.PatientSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ReferenceMemoryRepository) GetProvider(_ context.Context, id int64) (*entities.ProviderSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	p.Specialties = append([]string{}, p.Specialties...)
	return &p, nil
}

func (r *ReferenceMemoryRepository) GetInsurancePlan(_ context.Context, id int64) (*entities.InsurancePlanSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
