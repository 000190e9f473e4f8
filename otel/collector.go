// collector.go: OpenTelemetry MetricsCollector for xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthos"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthos.MetricsCollector using OpenTelemetry.
//
// This collector records cache operations to OpenTelemetry metrics, enabling
// enterprise-grade observability with automatic percentile calculation and
// multi-backend support.
//
// The cache calls the collector from its owner's goroutine only, but the
// underlying OTEL instruments are thread-safe, so a collector may be shared
// between several caches owned by different goroutines.
type OTelMetricsCollector struct {
	getLatency    metric.Int64Histogram // Get operation latency histogram
	setLatency    metric.Int64Histogram // Set operation latency histogram
	deleteLatency metric.Int64Histogram // Remove/Invalidate latency histogram
	hits          metric.Int64Counter   // Cache hits counter
	misses        metric.Int64Counter   // Cache misses counter
	evictions     metric.Int64Counter   // Evictions counter
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthos"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// This is useful for distinguishing metrics from multiple cache instances
// or integrating with existing OTEL instrumentation.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// The collector creates the following OTEL instruments:
//   - Int64Histogram for latencies (Get, Set, Delete)
//   - Int64Counter for hits, misses, evictions
//
// Returns an error when provider is nil or an instrument cannot be created.
//
// Example:
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, err := NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/agilira/xanthos",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)

	collector := &OTelMetricsCollector{}

	var err error
	collector.getLatency, err = meter.Int64Histogram(
		"xanthos_get_latency_ns",
		metric.WithDescription("Latency of Get operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.setLatency, err = meter.Int64Histogram(
		"xanthos_set_latency_ns",
		metric.WithDescription("Latency of Set operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.deleteLatency, err = meter.Int64Histogram(
		"xanthos_delete_latency_ns",
		metric.WithDescription("Latency of Remove and Invalidate operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.hits, err = meter.Int64Counter(
		"xanthos_get_hits_total",
		metric.WithDescription("Total number of cache hits"),
	)
	if err != nil {
		return nil, err
	}

	collector.misses, err = meter.Int64Counter(
		"xanthos_get_misses_total",
		metric.WithDescription("Total number of cache misses"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		"xanthos_evictions_total",
		metric.WithDescription("Total number of entries evicted by admission or the eviction pass"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordGet records a Get operation: latency to the Get histogram and one
// increment of either the hits or the misses counter.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()

	c.getLatency.Record(ctx, latencyNs)

	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordSet records a Set operation's latency.
func (c *OTelMetricsCollector) RecordSet(latencyNs int64) {
	c.setLatency.Record(context.Background(), latencyNs)
}

// RecordDelete records a Remove or Invalidate operation's latency.
func (c *OTelMetricsCollector) RecordDelete(latencyNs int64) {
	c.deleteLatency.Record(context.Background(), latencyNs)
}

// RecordEviction increments the evictions counter.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// Compile-time interface check
var _ xanthos.MetricsCollector = (*OTelMetricsCollector)(nil)
