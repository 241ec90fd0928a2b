package response

import (
	"testing"
	"time"

	"claims_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromClaim(t *testing.T) {
	paid := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	approved := decimal.RequireFromString("200")
	c := entities.Claim{
		ID:             9,
		ClaimNumber:    "CLM-2024-000009",
		ClaimType:      entities.ClaimTypeMedical,
		Status:         entities.ClaimStatusPaid,
		TotalAmount:    decimal.RequireFromString("250.5"),
		ApprovedAmount: &approved,
		ServiceDate:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		SubmittedAt:    time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
		PaidAt:         &paid,
		LineItems: []entities.LineItem{{
			LineNumber:  1,
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("250.5"),
			TotalAmount: decimal.RequireFromString("250.5"),
			Status:      entities.ClaimStatusSubmitted,
		}},
	}

	res := FromClaim(c)
	if res.TotalAmount != "250.50" || res.ApprovedAmount != "200.00" || res.InsurancePayment != "0.00" {
		t.Fatalf("unexpected money: %+v", res)
	}
	if res.ServiceDate != "2024-01-15" || res.SubmittedDate != "2024-01-16T08:00:00Z" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.PaidDate != "2024-03-15T10:30:00Z" || res.ProcessedDate != "" {
		t.Fatalf("unexpected lifecycle stamps: %+v", res)
	}
	if res.Status != "paid" || res.ClaimType != "medical" {
		t.Fatalf("unexpected enums: %+v", res)
	}
	if res.DiagnosisCodes == nil || len(res.DiagnosisCodes) != 0 {
		t.Fatalf("expected empty diagnosis codes, got %v", res.DiagnosisCodes)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].AllowedAmount != "0.00" || res.LineItems[0].CopayAmount != "0.00" {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.PatientInfo != nil || res.ProviderInfo != nil || res.InsurancePlanInfo != nil {
		t.Fatalf("expected no summaries")
	}
}

func TestFromClaimDetails(t *testing.T) {
	d := entities.ClaimDetails{
		Claim: entities.Claim{ID: 1, Status: entities.ClaimStatusSubmitted},
		Patient: &entities.PatientSummary{
			ID: 1, PatientCode: "PAT-000001", FirstName: "Maria", LastName: "Silva",
			DateOfBirth: time.Date(1985, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		Provider: &entities.ProviderSummary{ID: 2, ProviderCode: "PRV-2", ProviderName: "Clinic"},
	}

	res := FromClaimDetails(d)
	if res.PatientInfo == nil || res.PatientInfo.PatientID != "PAT-000001" || res.PatientInfo.DateOfBirth != "1985-06-02" {
		t.Fatalf("unexpected patient info: %+v", res.PatientInfo)
	}
	if res.ProviderInfo == nil || res.ProviderInfo.ProviderName != "Clinic" || res.ProviderInfo.Specialties == nil {
		t.Fatalf("unexpected provider info: %+v", res.ProviderInfo)
	}
	if res.InsurancePlanInfo != nil {
		t.Fatalf("expected unresolved plan to be omitted")
	}

	list := FromClaimDetailsList([]entities.ClaimDetails{d, d})
	if len(list) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(list))
	}
}
