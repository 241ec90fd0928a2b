package interfaces

import (
	"context"

	"claims_processor/internal/domain/entities"
)

// IEventEmitter hands lifecycle events to the event sink.
//
// Delivery is at-most-once: callers log a returned error and carry on, the persisted
// state change is never rolled back because of it.
type IEventEmitter interface {
	Emit(ctx context.Context, event entities.ClaimEvent) error
}
