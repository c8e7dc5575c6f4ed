package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	RoutingKeyEmailBatchRegistered = "email.batch.registered"
	RoutingKeyFraudulentDetected   = "email.fraud.detected"
)

const (
	EmailExchange      = "email"
	EmailAnalysisQueue = "email.analysis"
)

type EmailBatchRegisteredMessage struct {
	BatchID      uuid.UUID `json:"batch_id" validate:"required"`
	EmailIDList  []int64   `json:"email_id_list" validate:"required,min=1,dive,gt=0"`
	RegisteredAt time.Time `json:"registered_at" validate:"required"`
}

type SuspectingFraudulentEmailMessage struct {
	Email      EmailRecord `json:"email"`
	BatchID    uuid.UUID   `json:"batch_id"`
	DetectedAt time.Time   `json:"detected_at"`
}
