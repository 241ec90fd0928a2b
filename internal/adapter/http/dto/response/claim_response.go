package response

import (
	"claims_processor/internal/domain/entities"
)

type LineItemResponse struct {
	ID                   int64  `json:"id"`
	LineNumber           int    `json:"line_number"`
	ProcedureCode        string `json:"procedure_code"`
	ProcedureDescription string `json:"procedure_description"`
	DiagnosisCode        string `json:"diagnosis_code"`
	ServiceDate          string `json:"service_date"`
	Quantity             int    `json:"quantity"`
	UnitPrice            string `json:"unit_price"`
	TotalAmount          string `json:"total_amount"`
	AllowedAmount        string `json:"allowed_amount"`
	DeductibleAmount     string `json:"deductible_amount"`
	CopayAmount          string `json:"copay_amount"`
	CoinsuranceAmount    string `json:"coinsurance_amount"`
	NotCoveredAmount     string `json:"not_covered_amount"`
	Status               string `json:"status"`
	DenialReason         string `json:"denial_reason"`
}

type PatientInfoResponse struct {
	ID          int64  `json:"id"`
	PatientID   string `json:"patient_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
}

type ProviderInfoResponse struct {
	ID           int64    `json:"id"`
	ProviderID   string   `json:"provider_id"`
	ProviderName string   `json:"provider_name"`
	ProviderType string   `json:"provider_type"`
	Specialties  []string `json:"specialties"`
	PhoneNumber  string   `json:"phone_number"`
}

type InsurancePlanInfoResponse struct {
	ID          int64  `json:"id"`
	PlanName    string `json:"plan_name"`
	PlanCode    string `json:"plan_code"`
	PlanType    string `json:"plan_type"`
	CompanyName string `json:"company_name"`
}

// ClaimResponse is the read representation of a claim. Money is rendered with two
// decimals and unset amounts as "0.00"; unset lifecycle stamps are empty strings.
type ClaimResponse struct {
	ID                    int64                      `json:"id"`
	ClaimNumber           string                     `json:"claim_number"`
	PatientID             int64                      `json:"patient_id"`
	InsurancePlanID       int64                      `json:"insurance_plan_id"`
	ProviderID            int64                      `json:"provider_id"`
	ClaimType             string                     `json:"claim_type"`
	Status                string                     `json:"status"`
	PriorityLevel         int                        `json:"priority_level"`
	TotalAmount           string                     `json:"total_amount"`
	ApprovedAmount        string                     `json:"approved_amount"`
	PatientResponsibility string                     `json:"patient_responsibility"`
	InsurancePayment      string                     `json:"insurance_payment"`
	ServiceDate           string                     `json:"service_date"`
	DiagnosisCodes        []string                   `json:"diagnosis_codes"`
	ProcedureCodes        []string                   `json:"procedure_codes"`
	SubmittedDate         string                     `json:"submitted_date"`
	ProcessedDate         string                     `json:"processed_date"`
	PaidDate              string                     `json:"paid_date"`
	AssignedAdjusterID    *int64                     `json:"assigned_adjuster_id"`
	ReviewNotes           string                     `json:"review_notes"`
	DenialReason          string                     `json:"denial_reason"`
	LineItems             []LineItemResponse         `json:"line_items"`
	PatientInfo           *PatientInfoResponse       `json:"patient_info,omitempty"`
	ProviderInfo          *ProviderInfoResponse      `json:"provider_info,omitempty"`
	InsurancePlanInfo     *InsurancePlanInfoResponse `json:"insurance_plan_info,omitempty"`
}

type ClaimEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Claim   *ClaimResponse `json:"claim,omitempty"`
}

type ClaimListEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Claims     []ClaimResponse `json:"claims"`
	TotalCount int             `json:"total_count"`
}

type LineItemEnvelope struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	LineItem *LineItemResponse `json:"line_item,omitempty"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	res := ClaimResponse{
		ID:                    c.ID,
		ClaimNumber:           c.ClaimNumber,
		PatientID:             c.PatientID,
		InsurancePlanID:       c.InsurancePlanID,
		ProviderID:            c.ProviderID,
		ClaimType:             string(c.ClaimType),
		Status:                string(c.Status),
		PriorityLevel:         c.PriorityLevel,
		TotalAmount:           entities.FormatAmount(c.TotalAmount),
		ApprovedAmount:        entities.FormatOptionalAmount(c.ApprovedAmount),
		PatientResponsibility: entities.FormatOptionalAmount(c.PatientResponsibility),
		InsurancePayment:      entities.FormatOptionalAmount(c.InsurancePayment),
		ServiceDate:           entities.FormatDate(c.ServiceDate),
		DiagnosisCodes:        nonNil(c.DiagnosisCodes),
		ProcedureCodes:        nonNil(c.ProcedureCodes),
		SubmittedDate:         entities.FormatTimestamp(&c.SubmittedAt),
		ProcessedDate:         entities.FormatTimestamp(c.ProcessedAt),
		PaidDate:              entities.FormatTimestamp(c.PaidAt),
		AssignedAdjusterID:    c.AssignedAdjusterID,
		ReviewNotes:           c.ReviewNotes,
		DenialReason:          c.DenialReason,
		LineItems:             make([]LineItemResponse, 0, len(c.LineItems)),
	}
	for _, li := range c.LineItems {
		res.LineItems = append(res.LineItems, FromLineItem(li))
	}
	return res
}

func FromClaimDetails(d entities.ClaimDetails) ClaimResponse {
	res := FromClaim(d.Claim)
	if p := d.Patient; p != nil {
		res.PatientInfo = &PatientInfoResponse{
			ID:          p.ID,
			PatientID:   p.PatientCode,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			DateOfBirth: entities.FormatDate(p.DateOfBirth),
			Gender:      p.Gender,
			PhoneNumber: p.PhoneNumber,
		}
	}
	if p := d.Provider; p != nil {
		res.ProviderInfo = &ProviderInfoResponse{
			ID:           p.ID,
			ProviderID:   p.ProviderCode,
			ProviderName: p.ProviderName,
			ProviderType: p.ProviderType,
			Specialties:  nonNil(p.Specialties),
			PhoneNumber:  p.PhoneNumber,
		}
	}
	if p := d.Plan; p != nil {
		res.InsurancePlanInfo = &InsurancePlanInfoResponse{
			ID:          p.ID,
			PlanName:    p.PlanName,
			PlanCode:    p.PlanCode,
			PlanType:    p.PlanType,
			CompanyName: p.CompanyName,
		}
	}
	return res
}

func FromClaimDetailsList(list []entities.ClaimDetails) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromClaimDetails(d))
	}
	return out
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                   li.ID,
		LineNumber:           li.LineNumber,
		ProcedureCode:        li.ProcedureCode,
		ProcedureDescription: li.ProcedureDescription,
		DiagnosisCode:        li.DiagnosisCode,
		ServiceDate:          entities.FormatDate(li.ServiceDate),
		Quantity:             li.Quantity,
		UnitPrice:            entities.FormatAmount(li.UnitPrice),
		TotalAmount:          entities.FormatAmount(li.TotalAmount),
		AllowedAmount:        entities.FormatOptionalAmount(li.AllowedAmount),
		DeductibleAmount:     entities.FormatAmount(li.DeductibleAmount),
		CopayAmount:          entities.FormatAmount(li.CopayAmount),
		CoinsuranceAmount:    entities.FormatAmount(li.CoinsuranceAmount),
		NotCoveredAmount:     entities.FormatAmount(li.NotCoveredAmount),
		Status:               string(li.Status),
		DenialReason:         li.DenialReason,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
