package store

import (
	"context"
	"time"

	"github.com/jwalitptl/patient-portal/pkg/metrics"
)

// Instrumented decorates a Store with operation counters and latency
// histograms.
type Instrumented struct {
	next    Store
	metrics *metrics.Metrics
}

func Instrument(next Store, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (s *Instrumented) Load(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	raw, ok, err := s.next.Load(ctx, key)
	s.observe("load", start, err)
	return raw, ok, err
}

func (s *Instrumented) Save(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Save(ctx, key, value)
	s.observe("save", start, err)
	return err
}

func (s *Instrumented) Close() error {
	return s.next.Close()
}

func (s *Instrumented) observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.StoreOperations.WithLabelValues(operation, status).Inc()
	s.metrics.StoreLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
