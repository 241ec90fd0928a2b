package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus is a node of the claim lifecycle state machine.
//
// Values are persisted and rendered lower-case, exactly as listed below.
type ClaimStatus string

const (
	ClaimStatusSubmitted   ClaimStatus = "submitted"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusPendingInfo ClaimStatus = "pending_info"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusDenied      ClaimStatus = "denied"
	ClaimStatusPaid        ClaimStatus = "paid"
	ClaimStatusAppealed    ClaimStatus = "appealed"
)

var claimStatuses = []ClaimStatus{
	ClaimStatusSubmitted,
	ClaimStatusUnderReview,
	ClaimStatusPendingInfo,
	ClaimStatusApproved,
	ClaimStatusDenied,
	ClaimStatusPaid,
	ClaimStatusAppealed,
}

// ClaimStatuses returns every lifecycle status in declaration order.
func ClaimStatuses() []ClaimStatus {
	out := make([]ClaimStatus, len(claimStatuses))
	copy(out, claimStatuses)
	return out
}

// ParseClaimStatus resolves a status name case-insensitively.
func ParseClaimStatus(raw string) (ClaimStatus, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range claimStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// ClaimType classifies the service a claim reimburses.
type ClaimType string

const (
	ClaimTypeMedical      ClaimType = "medical"
	ClaimTypeDental       ClaimType = "dental"
	ClaimTypeVision       ClaimType = "vision"
	ClaimTypePrescription ClaimType = "prescription"
	ClaimTypeEmergency    ClaimType = "emergency"
	ClaimTypePreventive   ClaimType = "preventive"
	ClaimTypeSpecialist   ClaimType = "specialist"
)

var claimTypes = []ClaimType{
	ClaimTypeMedical,
	ClaimTypeDental,
	ClaimTypeVision,
	ClaimTypePrescription,
	ClaimTypeEmergency,
	ClaimTypePreventive,
	ClaimTypeSpecialist,
}

// ParseClaimType resolves a claim type name case-insensitively.
func ParseClaimType(raw string) (ClaimType, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range claimTypes {
		if string(t) == v {
			return t, true
		}
	}
	return "", false
}

// DefaultPriorityLevel is applied when a submission carries no positive priority.
const DefaultPriorityLevel = 3

// Claim is the aggregate root of the claims engine.
//
// Storage model:
//   - PK: id (surrogate, assigned by the store)
//   - unique: claim_number
//   - line items are owned by the claim and never reparented
//
// Optional settlement amounts stay nil until a payment is posted. ProcessedAt and PaidAt
// are derived by ApplyStatusChange / ApplyPayment, never set directly by callers.
type Claim struct {
	ID          int64
	ClaimNumber string

	PatientID       int64
	ProviderID      int64
	InsurancePlanID int64

	ClaimType     ClaimType
	Status        ClaimStatus
	PriorityLevel int

	TotalAmount           decimal.Decimal
	ApprovedAmount        *decimal.Decimal
	PatientResponsibility *decimal.Decimal
	InsurancePayment      *decimal.Decimal

	ServiceDate    time.Time
	DiagnosisCodes []string
	ProcedureCodes []string

	SubmittedAt time.Time
	ProcessedAt *time.Time
	PaidAt      *time.Time

	AssignedAdjusterID *int64
	ReviewNotes        string
	DenialReason       string

	CreatedAt time.Time
	UpdatedAt time.Time

	LineItems []LineItem
}

// StatusChange carries an UpdateClaimStatus request after parsing.
// Empty strings and a non-positive adjuster id mean "leave as is".
type StatusChange struct {
	Status       ClaimStatus
	ReviewNotes  string
	DenialReason string
	AdjusterID   int64
}

// ApplyStatusChange moves the claim to ch.Status and derives the lifecycle timestamps.
//
// ProcessedAt is restamped every time approved or denied is applied, even when the claim
// already had that status, and PaidAt likewise for paid. Other statuses leave both untouched.
func (c *Claim) ApplyStatusChange(ch StatusChange, now time.Time) {
	c.Status = ch.Status

	switch ch.Status {
	case ClaimStatusApproved, ClaimStatusDenied:
		c.ProcessedAt = timePtr(now)
	case ClaimStatusPaid:
		c.PaidAt = timePtr(now)
	}

	if ch.ReviewNotes != "" {
		c.ReviewNotes = ch.ReviewNotes
	}
	if ch.DenialReason != "" {
		c.DenialReason = ch.DenialReason
	}
	if ch.AdjusterID > 0 {
		id := ch.AdjusterID
		c.AssignedAdjusterID = &id
	}
	c.UpdatedAt = now
}

// Payment holds the settlement amounts that parsed successfully; nil fields are left untouched.
type Payment struct {
	ApprovedAmount        *decimal.Decimal
	PatientResponsibility *decimal.Decimal
	InsurancePayment      *decimal.Decimal
}

// ApplyPayment posts the settlement and forces the claim to paid regardless of its current status.
func (c *Claim) ApplyPayment(p Payment, now time.Time) {
	if p.ApprovedAmount != nil {
		c.ApprovedAmount = decimalPtr(*p.ApprovedAmount)
	}
	if p.PatientResponsibility != nil {
		c.PatientResponsibility = decimalPtr(*p.PatientResponsibility)
	}
	if p.InsurancePayment != nil {
		c.InsurancePayment = decimalPtr(*p.InsurancePayment)
	}

	c.Status = ClaimStatusPaid
	c.ProcessedAt = timePtr(now)
	c.PaidAt = timePtr(now)
	c.UpdatedAt = now
}

// LineItemByNumber returns a pointer into c.LineItems, or nil.
func (c *Claim) LineItemByNumber(lineNumber int) *LineItem {
	for i := range c.LineItems {
		if c.LineItems[i].LineNumber == lineNumber {
			return &c.LineItems[i]
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
