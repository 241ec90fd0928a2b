package interfaces

import (
	"context"
	"errors"

	"claims_processor/internal/domain/entities"
)

// ErrDuplicateClaimNumber is returned by Create when the store's uniqueness constraint on
// claim_number rejects the insert.
var ErrDuplicateClaimNumber = errors.New("duplicate claim number")

// IClaimRepository abstracts persistence for the Claim aggregate.
//
// Lookups return a zero-value Claim (ID == 0) and a nil error when nothing matches.
// The store must:
//   - insert a claim and its line items atomically (Create assigns claim and line item ids)
//   - write the whole mutable field set of a claim in one step (Update)
//   - enforce uniqueness of claim_number
type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id int64) (entities.Claim, error)
	GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error)
	Update(ctx context.Context, c entities.Claim) (entities.Claim, error)
	UpdateLineItem(ctx context.Context, li entities.LineItem) error
	List(ctx context.Context, f entities.ClaimFilter) ([]entities.Claim, int, error)
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)
	Ping(ctx context.Context) error
}
