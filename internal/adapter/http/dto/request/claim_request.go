package request

import (
	"bytes"

	"claims_processor/internal/usecase"

	"github.com/goccy/go-json"
)

// Amount accepts money either as a JSON number or as a string. The raw text is handed
// to the usecase unparsed so format errors surface as validation failures there.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

type ClaimLineItemRequest struct {
	LineNumber           int    `json:"line_number"`
	ProcedureCode        string `json:"procedure_code"`
	ProcedureDescription string `json:"procedure_description"`
	DiagnosisCode        string `json:"diagnosis_code"`
	ServiceDate          string `json:"service_date"`
	Quantity             int    `json:"quantity"`
	UnitPrice            Amount `json:"unit_price"`
	TotalAmount          Amount `json:"total_amount"`
	AllowedAmount        Amount `json:"allowed_amount"`
	DeductibleAmount     Amount `json:"deductible_amount"`
	CopayAmount          Amount `json:"copay_amount"`
	CoinsuranceAmount    Amount `json:"coinsurance_amount"`
	NotCoveredAmount     Amount `json:"not_covered_amount"`
}

type SubmitClaimRequest struct {
	PatientID       int64                  `json:"patient_id"`
	InsurancePlanID int64                  `json:"insurance_plan_id"`
	ProviderID      int64                  `json:"provider_id"`
	ClaimType       string                 `json:"claim_type"`
	TotalAmount     Amount                 `json:"total_amount"`
	ServiceDate     string                 `json:"service_date"`
	DiagnosisCodes  []string               `json:"diagnosis_codes"`
	ProcedureCodes  []string               `json:"procedure_codes"`
	PriorityLevel   int                    `json:"priority_level"`
	LineItems       []ClaimLineItemRequest `json:"line_items"`
}

func (r SubmitClaimRequest) ToInput() usecase.SubmitClaimInput {
	in := usecase.SubmitClaimInput{
		PatientID:       r.PatientID,
		ProviderID:      r.ProviderID,
		InsurancePlanID: r.InsurancePlanID,
		ClaimType:       r.ClaimType,
		TotalAmount:     string(r.TotalAmount),
		ServiceDate:     r.ServiceDate,
		DiagnosisCodes:  r.DiagnosisCodes,
		ProcedureCodes:  r.ProcedureCodes,
		PriorityLevel:   r.PriorityLevel,
	}
	for _, li := range r.LineItems {
		in.LineItems = append(in.LineItems, usecase.LineItemInput{
			ProcedureCode:        li.ProcedureCode,
			ProcedureDescription: li.ProcedureDescription,
			DiagnosisCode:        li.DiagnosisCode,
			ServiceDate:          li.ServiceDate,
			Quantity:             li.Quantity,
			UnitPrice:            string(li.UnitPrice),
			TotalAmount:          string(li.TotalAmount),
			AllowedAmount:        string(li.AllowedAmount),
			DeductibleAmount:     string(li.DeductibleAmount),
			CopayAmount:          string(li.CopayAmount),
			CoinsuranceAmount:    string(li.CoinsuranceAmount),
			NotCoveredAmount:     string(li.NotCoveredAmount),
		})
	}
	return in
}

type UpdateClaimStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	ReviewNotes        string `json:"review_notes"`
	DenialReason       string `json:"denial_reason"`
	AssignedAdjusterID int64  `json:"assigned_adjuster_id"`
}

func (r UpdateClaimStatusRequest) ToInput(claimID int64) usecase.UpdateClaimStatusInput {
	return usecase.UpdateClaimStatusInput{
		ClaimID:      claimID,
		Status:       r.Status,
		ReviewNotes:  r.ReviewNotes,
		DenialReason: r.DenialReason,
		AdjusterID:   r.AssignedAdjusterID,
	}
}

type UpdateLineItemStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	DenialReason string `json:"denial_reason"`
}

func (r UpdateLineItemStatusRequest) ToInput(claimID int64, lineNumber int) usecase.UpdateLineItemStatusInput {
	return usecase.UpdateLineItemStatusInput{
		ClaimID:      claimID,
		LineNumber:   lineNumber,
		Status:       r.Status,
		DenialReason: r.DenialReason,
	}
}

type ProcessPaymentRequest struct {
	ApprovedAmount        Amount `json:"approved_amount"`
	PatientResponsibility Amount `json:"patient_responsibility"`
	InsurancePayment      Amount `json:"insurance_payment"`
}

func (r ProcessPaymentRequest) ToInput(claimID int64) usecase.ProcessPaymentInput {
	return usecase.ProcessPaymentInput{
		ClaimID:               claimID,
		ApprovedAmount:        string(r.ApprovedAmount),
		PatientResponsibility: string(r.PatientResponsibility),
		InsurancePayment:      string(r.InsurancePayment),
	}
}
