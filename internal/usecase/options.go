package usecase

import (
	"context"
	"time"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const DefaultClaimNumberAttempts = 3

type options struct {
	now                 Clock
	claimNumberAttempts int
}

type Option func(*options)

func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.now = c
		}
	}
}

// WithClaimNumberAttempts bounds how many numbers SubmitClaim tries when the store
// reports a duplicate claim number.
func WithClaimNumberAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.claimNumberAttempts = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, claimNumberAttempts: DefaultClaimNumberAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emitClaimEvent announces a persisted change. Failures are logged and dropped.
func emitClaimEvent(ctx context.Context, events interfaces.IEventEmitter, log *zap.Logger, eventType entities.ClaimEventType, c entities.Claim, at time.Time) {
	if events == nil {
		return
	}
	ev := entities.ClaimEvent{
		EventType: eventType,
		ClaimID:   c.ID,
		PatientID: c.PatientID,
		Timestamp: at.UTC(),
	}
	if err := events.Emit(ctx, ev); err != nil {
		log.Warn("claim event not published",
			zap.String("event_type", string(eventType)),
			zap.Int64("claim_id", c.ID),
			zap.Error(err),
		)
	}
}
