package repository

import (
	"time"

	"claims_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const storeTimeLayout = time.RFC3339Nano

func formatStoreTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(storeTimeLayout)
}

func parseStoreTime(raw string) time.Time {
	t, _ := time.Parse(storeTimeLayout, raw)
	return t
}

func formatOptionalStoreTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatStoreTime(*t)
}

func parseOptionalStoreTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t := parseStoreTime(raw)
	return &t
}

func optionalDecimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// nullableNumeric maps an unset amount to SQL NULL.
func nullableNumeric(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func parseOptionalDecimal(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func parseDecimal(raw string) decimal.Decimal {
	d, _ := decimal.NewFromString(raw)
	return d
}

// cloneClaim copies every slice and pointer so callers never share state with a store.
func cloneClaim(c entities.Claim) entities.Claim {
	out := c
	out.DiagnosisCodes = append([]string{}, c.DiagnosisCodes...)
	out.ProcedureCodes = append([]string{}, c.ProcedureCodes...)
	out.ApprovedAmount = cloneDecimal(c.ApprovedAmount)
	out.PatientResponsibility = cloneDecimal(c.PatientResponsibility)
	out.InsurancePayment = cloneDecimal(c.InsurancePayment)
	out.ProcessedAt = cloneTime(c.ProcessedAt)
	out.PaidAt = cloneTime(c.PaidAt)
	if c.AssignedAdjusterID != nil {
		id := *c.AssignedAdjusterID
		out.AssignedAdjusterID = &id
	}
	out.LineItems = make([]entities.LineItem, len(c.LineItems))
	for i, li := range c.LineItems {
		li.AllowedAmount = cloneDecimal(li.AllowedAmount)
		out.LineItems[i] = li
	}
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
