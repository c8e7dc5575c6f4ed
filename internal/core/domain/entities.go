package domain

import (
	"time"
)

type FraudLabel string

const (
	FraudLabelSafe         FraudLabel = "SAFE"
	FraudLabelModerateRisk FraudLabel = "MODERATE_RISK"
	FraudLabelHighRisk     FraudLabel = "HIGH_RISK"
)

// EmailRecord is the persisted email metadata. ID and FraudLabel are always
// assigned by the service.
type EmailRecord struct {
	ID         int64      `json:"id"`
	ClientID   string     `json:"cliente_id"`
	Recipient  string     `json:"destinatario"`
	Sender     string     `json:"emisor"`
	Timestamp  time.Time  `json:"fecha"`
	SMTPCode   string     `json:"codigo_smtp"`
	Body       string     `json:"contenido"`
	FraudLabel FraudLabel `json:"analisis_fraude"`
}

type SearchFilter struct {
	ClientID     string
	BodyContains string
	Sender       string
	Page         int
	PageSize     int
}

// Offset of the first record returned for the filter's page.
func (f SearchFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
