package port

import (
	"context"

	"stoik.com/emailregistry/internal/core/domain"
)

type RegistrationService interface {
	RegisterBatch(ctx context.Context, records []domain.EmailRecord) ([]domain.EmailRecord, error)
}

type SearchService interface {
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.EmailRecord, error)
}

type FraudDetectionService interface {
	Run(ctx context.Context, message domain.EmailBatchRegisteredMessage) error
}

type Catalog interface {
	AllowedDomains(clientID string) (map[string]struct{}, bool)
	ExpectedPrefix(domain string) (string, bool)
}

type MetricsRecorder interface {
	BatchRejected(reason string)
	BatchRegistered(records []domain.EmailRecord)
}
