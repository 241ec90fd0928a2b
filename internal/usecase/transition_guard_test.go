package usecase

import (
	"errors"
	"testing"

	"claims_processor/internal/domain/entities"
)

func TestTransitionGuardFor(t *testing.T) {
	for _, policy := range []string{"", "permissive", " Permissive "} {
		g, err := TransitionGuardFor(policy)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", policy, err)
		}
		if err := g(entities.ClaimStatusPaid, entities.ClaimStatusSubmitted); err != nil {
			t.Fatalf("expected permissive guard for %q, got %v", policy, err)
		}
	}

	g, err := TransitionGuardFor("strict")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g(entities.ClaimStatusPaid, entities.ClaimStatusSubmitted); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected strict guard, got %v", err)
	}

	if _, err := TransitionGuardFor("lenient"); !errors.Is(err, ErrUnknownTransitionRule) {
		t.Fatalf("expected ErrUnknownTransitionRule, got %v", err)
	}
}

func TestStrictTransitions(t *testing.T) {
	allowed := [][2]entities.ClaimStatus{
		{entities.ClaimStatusSubmitted, entities.ClaimStatusUnderReview},
		{entities.ClaimStatusUnderReview, entities.ClaimStatusApproved},
		{entities.ClaimStatusPendingInfo, entities.ClaimStatusUnderReview},
		{entities.ClaimStatusApproved, entities.ClaimStatusPaid},
		{entities.ClaimStatusDenied, entities.ClaimStatusAppealed},
		{entities.ClaimStatusAppealed, entities.ClaimStatusApproved},
		{entities.ClaimStatusPaid, entities.ClaimStatusPaid},
	}
	for _, tr := range allowed {
		if err := StrictTransitions(tr[0], tr[1]); err != nil {
			t.Fatalf("expected %s -> %s allowed, got %v", tr[0], tr[1], err)
		}
	}

	rejected := [][2]entities.ClaimStatus{
		{entities.ClaimStatusPaid, entities.ClaimStatusDenied},
		{entities.ClaimStatusDenied, entities.ClaimStatusApproved},
		{entities.ClaimStatusSubmitted, entities.ClaimStatusPaid},
	}
	for _, tr := range rejected {
		if err := StrictTransitions(tr[0], tr[1]); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected %s -> %s rejected, got %v", tr[0], tr[1], err)
		}
	}
}
