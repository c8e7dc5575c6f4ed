package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

type RegistrationService struct {
	storage        port.EmailsStorage
	notifierClient port.NotifierClient
	validator      *RecordValidator
	metrics        port.MetricsRecorder
	maxBatchSize   int
}

// NewRegistrationService wires the registration pipeline. notifierClient and
// metrics may be nil. A maxBatchSize <= 0 disables the batch size check.
func NewRegistrationService(
	storage port.EmailsStorage,
	notifierClient port.NotifierClient,
	catalog port.Catalog,
	metrics port.MetricsRecorder,
	maxBatchSize int,
) *RegistrationService {
	return &RegistrationService{
		storage:        storage,
		notifierClient: notifierClient,
		validator:      NewRecordValidator(catalog),
		metrics:        metrics,
		maxBatchSize:   maxBatchSize,
	}
}

// RegisterBatch validates, scores and stores records as a single unit. The
// first invalid record aborts the batch and nothing is stored.
func (s *RegistrationService) RegisterBatch(ctx context.Context, records []domain.EmailRecord) ([]domain.EmailRecord, error) {
	if len(records) == 0 {
		return []domain.EmailRecord{}, nil
	}
	if s.maxBatchSize > 0 && len(records) > s.maxBatchSize {
		s.rejected("too_large")
		return nil, domain.ErrBatchTooLarge
	}

	prepared := make([]domain.EmailRecord, 0, len(records))
	for i, record := range records {
		if err := s.validator.Validate(record); err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				validationErr.Index = i
				s.rejected(string(validationErr.Kind))
			}
			log.WithFields(log.Fields{
				"index":    i,
				"clientID": record.ClientID,
				"sender":   record.Sender,
			}).WithError(err).Warn("Email batch rejected")
			return nil, err
		}

		record.ID = 0
		record.ClientID = strings.ToUpper(record.ClientID)
		record.FraudLabel = ScoreContent(record.Body)
		prepared = append(prepared, record)
	}

	stored, err := s.storage.StoreBatch(ctx, prepared)
	if err != nil {
		if errors.Is(err, domain.ErrStorageConflict) {
			s.rejected("storage_conflict")
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BatchRegistered(stored)
	}

	s.notify(ctx, stored)

	return stored, nil
}

func (s *RegistrationService) rejected(reason string) {
	if s.metrics != nil {
		s.metrics.BatchRejected(reason)
	}
}

// notify is best effort: the batch is already committed.
func (s *RegistrationService) notify(ctx context.Context, stored []domain.EmailRecord) {
	if s.notifierClient == nil {
		return
	}

	msg := &domain.EmailBatchRegisteredMessage{
		BatchID:      uuid.New(),
		EmailIDList:  extractEmailIDs(stored),
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.notifierClient.NotifyEmailBatchRegistered(ctx, msg); err != nil {
		log.WithError(err).WithField("batchID", msg.BatchID).Error("Failed to notify registered batch")
		return
	}

	log.WithFields(log.Fields{
		"batchID":    msg.BatchID,
		"emailCount": len(msg.EmailIDList),
	}).Info("Email batch registered")
}

func extractEmailIDs(batch []domain.EmailRecord) []int64 {
	ids := make([]int64, 0, len(batch))
	for _, email := range batch {
		ids = append(ids, email.ID)
	}
	return ids
}
