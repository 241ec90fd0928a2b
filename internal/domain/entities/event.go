package entities

import "time"

// ClaimEventType doubles as the routing key on the event sink.
type ClaimEventType string

const (
	EventClaimSubmitted        ClaimEventType = "claim.submitted"
	EventClaimStatusChanged    ClaimEventType = "claim.status_changed"
	EventClaimPaymentProcessed ClaimEventType = "claim.payment_processed"
)

// ClaimEvent is the message announced after a lifecycle change has been persisted.
type ClaimEvent struct {
	EventType ClaimEventType `json:"eventType"`
	ClaimID   int64          `json:"claimId"`
	PatientID int64          `json:"patientId"`
	Timestamp time.Time      `json:"timestamp"`
}
