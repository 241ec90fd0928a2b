package messaging

import (
	"context"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogEventEmitter stands in for the broker when none is configured.
type LogEventEmitter struct {
	log *zap.Logger
}

var _ interfaces.IEventEmitter = (*LogEventEmitter)(nil)

func NewLogEventEmitter(log *zap.Logger) *LogEventEmitter {
	return &LogEventEmitter{log: log}
}

func (e *LogEventEmitter) Emit(_ context.Context, event entities.ClaimEvent) error {
	e.log.Info("claim event",
		zap.String("event_type", string(event.EventType)),
		zap.Int64("claim_id", event.ClaimID),
		zap.Int64("patient_id", event.PatientID),
		zap.Time("timestamp", event.Timestamp),
	)
	return nil
}
