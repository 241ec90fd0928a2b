package entities

import (
	"sort"
	"time"
)

// DefaultListLimit is the page size used when a caller asks for none (or a non-positive one).
const DefaultListLimit = 10

// ClaimFilter describes a QueryEngine listing. Zero values mean "no constraint".
//
// StartDate and EndDate bound the service date inclusively.
type ClaimFilter struct {
	PatientID  int64
	ProviderID int64
	Status     ClaimStatus
	ClaimType  ClaimType
	StartDate  *time.Time
	EndDate    *time.Time

	Limit  int
	Offset int
}

// Normalized applies the default page size and clamps the offset to zero.
func (f ClaimFilter) Normalized() ClaimFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Matches reports whether c satisfies every predicate of f (pagination is ignored).
func (f ClaimFilter) Matches(c Claim) bool {
	if f.PatientID > 0 && c.PatientID != f.PatientID {
		return false
	}
	if f.ProviderID > 0 && c.ProviderID != f.ProviderID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.ClaimType != "" && c.ClaimType != f.ClaimType {
		return false
	}
	if f.StartDate != nil && c.ServiceDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && c.ServiceDate.After(*f.EndDate) {
		return false
	}
	return true
}

// SortBySubmittedDesc orders claims most recent submission first; ties fall back to
// the higher id so pages are stable.
func SortBySubmittedDesc(claims []Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].SubmittedAt.Equal(claims[j].SubmittedAt) {
			return claims[i].ID > claims[j].ID
		}
		return claims[i].SubmittedAt.After(claims[j].SubmittedAt)
	})
}

// Page cuts the window described by f out of an already sorted slice.
func Page(claims []Claim, f ClaimFilter) []Claim {
	if f.Offset >= len(claims) {
		return []Claim{}
	}
	end := len(claims)
	if f.Limit < end-f.Offset {
		end = f.Offset + f.Limit
	}
	return claims[f.Offset:end]
}
