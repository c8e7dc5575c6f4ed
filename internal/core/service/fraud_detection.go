package service

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"stoik.com/emailregistry/internal/core/domain"
	"stoik.com/emailregistry/internal/core/port"
)

var fraudKeywords = []string{
	"cuenta bloqueada",
	"verificación inmediata",
	"actualice su contraseña",
	"premio",
	"urgente",
	"pago fallido",
	"ha sido suspendida",
	"transferencia bancaria",
}

// ScoreContent labels an email body by counting the distinct fraud keywords
// it contains, case-insensitively.
func ScoreContent(body string) domain.FraudLabel {
	lower := strings.ToLower(body)

	matches := 0
	for _, keyword := range fraudKeywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}

	switch {
	case matches >= 2:
		return domain.FraudLabelHighRisk
	case matches == 1:
		return domain.FraudLabelModerateRisk
	}
	return domain.FraudLabelSafe
}

type FraudDetectionService struct {
	storage        port.EmailsStorage
	notifierClient port.NotifierClient
}

func NewFraudDetectionService(storage port.EmailsStorage, notifierClient port.NotifierClient) *FraudDetectionService {
	return &FraudDetectionService{
		storage:        storage,
		notifierClient: notifierClient,
	}
}

// Run loads a registered batch and raises one alert per high risk email.
func (f *FraudDetectionService) Run(ctx context.Context, message domain.EmailBatchRegisteredMessage) error {
	emails, err := f.storage.GetEmailsByIDs(ctx, message.EmailIDList)
	if err != nil {
		return err
	}

	alerts := 0
	for _, email := range emails {
		if email.FraudLabel != domain.FraudLabelHighRisk {
			continue
		}
		alert := &domain.SuspectingFraudulentEmailMessage{
			Email:      email,
			BatchID:    message.BatchID,
			DetectedAt: time.Now().UTC(),
		}
		if err := f.notifierClient.NotifySuspectingFraudulentEmail(ctx, alert); err != nil {
			return err
		}
		alerts++
	}

	log.WithFields(log.Fields{
		"batchID": message.BatchID,
		"emails":  len(emails),
		"alerts":  alerts,
	}).Info("Fraud detection completed")

	return nil
}
