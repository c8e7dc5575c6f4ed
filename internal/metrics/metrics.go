package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"stoik.com/emailregistry/internal/core/domain"
)

const namespace = "emailregistry"

type Metrics struct {
	batchesRegistered prometheus.Counter
	batchesRejected   *prometheus.CounterVec
	emailsRegistered  *prometheus.CounterVec
}

// New creates the registration metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		batchesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_registered_total",
			Help:      "Email batches committed to storage.",
		}),
		batchesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_rejected_total",
			Help:      "Email batches rejected, by reason.",
		}, []string{"reason"}),
		emailsRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_registered_total",
			Help:      "Emails committed to storage, by fraud label.",
		}, []string{"fraud_label"}),
	}

	reg.MustRegister(m.batchesRegistered, m.batchesRejected, m.emailsRegistered)

	return m
}

func (m *Metrics) BatchRejected(reason string) {
	m.batchesRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) BatchRegistered(records []domain.EmailRecord) {
	m.batchesRegistered.Inc()
	for _, record := range records {
		m.emailsRegistered.WithLabelValues(string(record.FraudLabel)).Inc()
	}
}
