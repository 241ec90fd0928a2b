package repository

import (
	"context"
	"strings"
	"sync"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"
)

// ClaimMemoryRepository keeps claims in process memory. It backs tests and local runs and
// doubles as the store-side claim number counter.
type ClaimMemoryRepository struct {
	mu         sync.RWMutex
	claims     map[int64]entities.Claim
	byNumber   map[string]int64
	nextID     int64
	nextLineID int64
	sequences  map[string]int64
}

var (
	_ interfaces.IClaimRepository   = (*ClaimMemoryRepository)(nil)
	_ interfaces.ISequenceAllocator = (*ClaimMemoryRepository)(nil)
)

func NewClaimMemoryRepository() *ClaimMemoryRepository {
	return &ClaimMemoryRepository{
		claims:    map[int64]entities.Claim{},
		byNumber:  map[string]int64{},
		sequences: map[string]int64{},
	}
}

func (r *ClaimMemoryRepository) Create(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byNumber[c.ClaimNumber]; taken {
		return entities.Claim{}, interfaces.ErrDuplicateClaimNumber
	}

	r.nextID++
	stored := cloneClaim(c)
	stored.ID = r.nextID
	for i := range stored.LineItems {
		r.nextLineID++
		stored.LineItems[i].ID = r.nextLineID
		stored.LineItems[i].ClaimID = stored.ID
	}

	r.claims[stored.ID] = stored
	r.byNumber[stored.ClaimNumber] = stored.ID
	return cloneClaim(stored), nil
}

func (r *ClaimMemoryRepository) GetByID(_ context.Context, id int64) (entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.claims[id]
	if !ok {
		return entities.Claim{}, nil
	}
	return cloneClaim(c), nil
}

func (r *ClaimMemoryRepository) GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error) {
	r.mu.RLock()
	id, ok := r.byNumber[claimNumber]
	r.mu.RUnlock()
	if !ok {
		return entities.Claim{}, nil
	}
	return r.GetByID(ctx, id)
}

// Update replaces the claim's mutable fields. Line items and identity are kept from the store.
func (r *ClaimMemoryRepository) Update(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.claims[c.ID]
	if !ok {
		return entities.Claim{}, nil
	}
	next := cloneClaim(c)
	next.ClaimNumber = existing.ClaimNumber
	next.CreatedAt = existing.CreatedAt
	next.SubmittedAt = existing.SubmittedAt
	next.LineItems = existing.LineItems
	r.claims[c.ID] = next
	return cloneClaim(next), nil
}

func (r *ClaimMemoryRepository) UpdateLineItem(_ context.Context, li entities.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.claims[li.ClaimID]
	if !ok {
		return nil
	}
	for i := range c.LineItems {
		if c.LineItems[i].ID == li.ID {
			c.LineItems[i].Status = li.Status
			c.LineItems[i].DenialReason = li.DenialReason
		}
	}
	return nil
}

func (r *ClaimMemoryRepository) List(_ context.Context, f entities.ClaimFilter) ([]entities.Claim, int, error) {
	r.mu.RLock()
	matched := make([]entities.Claim, 0, len(r.claims))
	for _, c := range r.claims {
		if f.Matches(c) {
			matched = append(matched, cloneClaim(c))
		}
	}
	r.mu.RUnlock()

	entities.SortBySubmittedDesc(matched)
	return entities.Page(matched, f.Normalized()), len(matched), nil
}

func (r *ClaimMemoryRepository) CountByNumberPrefix(_ context.Context, prefix string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for number := range r.byNumber {
		if strings.HasPrefix(number, prefix) {
			n++
		}
	}
	return n, nil
}

func (r *ClaimMemoryRepository) Next(_ context.Context, bucket string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sequences[bucket]++
	return r.sequences[bucket], nil
}

func (r *ClaimMemoryRepository) Ping(context.Context) error {
	return nil
}
