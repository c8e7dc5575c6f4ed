package port

import (
	"context"

	"stoik.com/emailregistry/internal/core/domain"
)

type NotifierClient interface {
	NotifySuspectingFraudulentEmail(ctx context.Context, message *domain.SuspectingFraudulentEmailMessage) error
	NotifyEmailBatchRegistered(ctx context.Context, message *domain.EmailBatchRegisteredMessage) error
}
