package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the calendar-date wire format (service dates, filters).
	DateLayout = "2006-01-02"
	// TimestampLayout is the UTC timestamp wire format for lifecycle stamps.
	TimestampLayout = "2006-01-02T15:04:05Z"

	moneyPlaces = 2
)

var ErrEmptyAmount = errors.New("empty amount")

// ParseAmount parses a monetary string into a 2-decimal fixed-point value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Round(moneyPlaces), nil
}

// AmountOrZero parses raw and falls back to zero when it cannot be parsed.
func AmountOrZero(raw string) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// OptionalAmount parses raw and returns nil when it cannot be parsed.
func OptionalAmount(raw string) *decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return nil
	}
	return &d
}

// FormatAmount renders money with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

// FormatOptionalAmount renders nil as "0.00".
func FormatOptionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return FormatAmount(decimal.Zero)
	}
	return FormatAmount(*d)
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// DateOf truncates t to its calendar date in t's location, returned as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date; the zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatTimestamp renders a UTC timestamp; nil renders empty.
func FormatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}
