package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"claims_processor/internal/usecase/interfaces"
)

const DefaultClaimNumberPrefix = "CLM"

var ErrSequenceExhausted = errors.New("claim number sequence exhausted")

// ClaimNumberGenerator renders claim numbers as PREFIX-YYYY-NNNNNN.
//
// The counter lives behind an ISequenceAllocator keyed by "PREFIX-YYYY", so numbering
// restarts every calendar year. Uniqueness across concurrent submissions is the
// allocator's job; the store's unique index on claim_number is the backstop.
type ClaimNumberGenerator struct {
	prefix    string
	allocator interfaces.ISequenceAllocator
	now       Clock
}

func NewClaimNumberGenerator(prefix string, allocator interfaces.ISequenceAllocator, now Clock) *ClaimNumberGenerator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultClaimNumberPrefix
	}
	if now == nil {
		now = time.Now
	}
	return &ClaimNumberGenerator{prefix: prefix, allocator: allocator, now: now}
}

// Bucket is the counter key for the current year, e.g. "CLM-2024".
func (g *ClaimNumberGenerator) Bucket() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.now().Year())
}

func (g *ClaimNumberGenerator) Next(ctx context.Context) (string, error) {
	bucket := g.Bucket()
	seq, err := g.allocator.Next(ctx, bucket)
	if err != nil {
		return "", err
	}
	if seq < 1 || seq > 999999 {
		return "", fmt.Errorf("%w: %s reached %d", ErrSequenceExhausted, bucket, seq)
	}
	return fmt.Sprintf("%s-%06d", bucket, seq), nil
}

// CountingAllocator derives the next value from the number of claims already numbered in
// the bucket. Two concurrent callers can read the same count, so it relies on the
// duplicate-number retry in SubmitClaim.
type CountingAllocator struct {
	repo interfaces.IClaimRepository
}

var _ interfaces.ISequenceAllocator = (*CountingAllocator)(nil)

func NewCountingAllocator(repo interfaces.IClaimRepository) *CountingAllocator {
	return &CountingAllocator{repo: repo}
}

func (a *CountingAllocator) Next(ctx context.Context, bucket string) (int64, error) {
	n, err := a.repo.CountByNumberPrefix(ctx, bucket+"-")
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}
