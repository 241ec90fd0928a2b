package entities

import "time"

// Reference data is owned by other services. The engine only checks existence at
// submission and resolves these summaries by id when rendering a claim.

type PatientSummary struct {
	ID          int64
	PatientCode string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	PhoneNumber string
}

type ProviderSummary struct {
	ID           int64
	ProviderCode string
	ProviderName string
	ProviderType string
	PhoneNumber  string
	Specialties  []string
}

type InsurancePlanSummary struct {
	ID          int64
	PlanName    string
	PlanCode    string
	PlanType    string
	CompanyName string
}

// ClaimDetails is a claim plus the reference summaries it points at.
// Any summary may be nil when the referenced record no longer resolves.
type ClaimDetails struct {
	Claim    Claim
	Patient  *PatientSummary
	Provider *ProviderSummary
	Plan     *InsurancePlanSummary
}
