package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one billed procedure within a claim.
//
// LineNumber is 1-based and assigned at claim creation in input order. The allocation
// buckets (deductible, copay, coinsurance, not covered) default to zero. Status is
// independent of the parent claim's status.
type LineItem struct {
	ID         int64
	ClaimID    int64
	LineNumber int

	ProcedureCode        string
	ProcedureDescription string
	DiagnosisCode        string
	ServiceDate          time.Time

	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal

	AllowedAmount     *decimal.Decimal
	DeductibleAmount  decimal.Decimal
	CopayAmount       decimal.Decimal
	CoinsuranceAmount decimal.Decimal
	NotCoveredAmount  decimal.Decimal

	Status       ClaimStatus
	DenialReason string
	CreatedAt    time.Time
}
