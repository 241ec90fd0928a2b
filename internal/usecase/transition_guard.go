package usecase

import (
	"errors"
	"fmt"
	"strings"

	"claims_processor/internal/domain/entities"
)

const (
	TransitionPolicyPermissive = "permissive"
	TransitionPolicyStrict     = "strict"
)

var (
	ErrTransitionNotAllowed  = errors.New("status transition not allowed")
	ErrUnknownTransitionRule = errors.New("unknown transition policy")
)

// TransitionGuard decides whether UpdateClaimStatus may move a claim from one status to
// another. ProcessPayment never consults it.
type TransitionGuard func(from, to entities.ClaimStatus) error

// PermissiveTransitions accepts every move, including backwards ones.
func PermissiveTransitions(_, _ entities.ClaimStatus) error {
	return nil
}

var strictTransitions = map[entities.ClaimStatus][]entities.ClaimStatus{
	entities.ClaimStatusSubmitted: {
		entities.ClaimStatusUnderReview,
		entities.ClaimStatusPendingInfo,
		entities.ClaimStatusApproved,
		entities.ClaimStatusDenied,
	},
	entities.ClaimStatusUnderReview: {
		entities.ClaimStatusPendingInfo,
		entities.ClaimStatusApproved,
		entities.ClaimStatusDenied,
	},
	entities.ClaimStatusPendingInfo: {
		entities.ClaimStatusUnderReview,
		entities.ClaimStatusApproved,
		entities.ClaimStatusDenied,
	},
	entities.ClaimStatusApproved: {
		entities.ClaimStatusPaid,
		entities.ClaimStatusUnderReview,
	},
	entities.ClaimStatusDenied: {
		entities.ClaimStatusAppealed,
	},
	entities.ClaimStatusAppealed: {
		entities.ClaimStatusUnderReview,
		entities.ClaimStatusApproved,
		entities.ClaimStatusDenied,
	},
}

// StrictTransitions follows the forward adjudication graph. Paid is terminal.
// Re-applying the current status is always allowed.
func StrictTransitions(from, to entities.ClaimStatus) error {
	if from == to {
		return nil
	}
	for _, next := range strictTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, to)
}

// TransitionGuardFor maps a configured policy name to its guard. Empty means permissive.
func TransitionGuardFor(policy string) (TransitionGuard, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", TransitionPolicyPermissive:
		return PermissiveTransitions, nil
	case TransitionPolicyStrict:
		return StrictTransitions, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransitionRule, policy)
	}
}
