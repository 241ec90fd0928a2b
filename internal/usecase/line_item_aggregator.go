package usecase

import (
	"errors"
	"strings"
	"time"

	"claims_processor/internal/domain/entities"
)

var (
	ErrLineItemProcedureRequired = errors.New("line item procedure code is required")
	ErrInvalidLineItemDate       = errors.New("invalid line item service date format")
)

// LineItemInput is one submitted line as received at the transport boundary.
// Any line number the caller sends is ignored.
type LineItemInput struct {
	ProcedureCode        string
	ProcedureDescription string
	DiagnosisCode        string
	ServiceDate          string
	Quantity             int
	UnitPrice            string
	TotalAmount          string
	AllowedAmount        string
	DeductibleAmount     string
	CopayAmount          string
	CoinsuranceAmount    string
	NotCoveredAmount     string
}

// LineItemAggregator turns submitted lines into owned line items.
//
// Lines are numbered 1..N in input order. A non-positive quantity becomes 1 and money
// that does not parse becomes zero (the optional allowed amount stays unset). Every line
// starts out submitted. An empty line service date inherits the claim's.
type LineItemAggregator struct {
	now Clock
}

func NewLineItemAggregator(now Clock) *LineItemAggregator {
	if now == nil {
		now = time.Now
	}
	return &LineItemAggregator{now: now}
}

func (a *LineItemAggregator) Normalize(in []LineItemInput, claimServiceDate time.Time) ([]entities.LineItem, error) {
	created := a.now().UTC()
	items := make([]entities.LineItem, 0, len(in))
	for i, raw := range in {
		code := strings.TrimSpace(raw.ProcedureCode)
		if code == "" {
			return nil, ErrLineItemProcedureRequired
		}

		serviceDate := claimServiceDate
		if strings.TrimSpace(raw.ServiceDate) != "" {
			d, err := entities.ParseDate(raw.ServiceDate)
			if err != nil {
				return nil, ErrInvalidLineItemDate
			}
			serviceDate = d
		}

		qty := raw.Quantity
		if qty <= 0 {
			qty = 1
		}

		items = append(items, entities.LineItem{
			LineNumber:           i + 1,
			ProcedureCode:        code,
			ProcedureDescription: strings.TrimSpace(raw.ProcedureDescription),
			DiagnosisCode:        strings.TrimSpace(raw.DiagnosisCode),
			ServiceDate:          serviceDate,
			Quantity:             qty,
			UnitPrice:            entities.AmountOrZero(raw.UnitPrice),
			TotalAmount:          entities.AmountOrZero(raw.TotalAmount),
			AllowedAmount:        entities.OptionalAmount(raw.AllowedAmount),
			DeductibleAmount:     entities.AmountOrZero(raw.DeductibleAmount),
			CopayAmount:          entities.AmountOrZero(raw.CopayAmount),
			CoinsuranceAmount:    entities.AmountOrZero(raw.CoinsuranceAmount),
			NotCoveredAmount:     entities.AmountOrZero(raw.NotCoveredAmount),
			Status:               entities.ClaimStatusSubmitted,
			CreatedAt:            created,
		})
	}
	return items, nil
}
