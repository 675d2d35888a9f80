// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package videostore

import (
	"context"
	"time"

	"github.com/ManuGH/vodmeta/internal/video"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vodmeta_store_operation_duration_seconds",
		Help:    "Video store operation latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "op"})

	storeOperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vodmeta_store_operation_errors_total",
		Help: "Total number of failed video store operations",
	}, []string{"backend", "op"})
)

// Instrumented records Prometheus latency and error metrics around a store.
type Instrumented struct {
	next    video.Store
	backend string
}

// NewInstrumented wraps next; backend is used as the metric label.
func NewInstrumented(next video.Store, backend string) *Instrumented {
	return &Instrumented{next: next, backend: backend}
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	storeOperationDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
	if err != nil {
		storeOperationErrors.WithLabelValues(s.backend, op).Inc()
	}
}

func (s *Instrumented) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.next.Count(ctx)
	s.observe("count", start, err)
	return n, err
}

func (s *Instrumented) List(ctx context.Context) ([]video.Video, error) {
	start := time.Now()
	videos, err := s.next.List(ctx)
	s.observe("list", start, err)
	return videos, err
}

func (s *Instrumented) Insert(ctx context.Context, v video.Video) (video.Video, error) {
	start := time.Now()
	stored, err := s.next.Insert(ctx, v)
	s.observe("insert", start, err)
	return stored, err
}
