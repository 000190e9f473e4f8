// Package otel provides OpenTelemetry integration for xanthos cache metrics.
//
// This package implements the xanthos.MetricsCollector interface using
// OpenTelemetry, enabling observability with automatic percentile
// calculation (p50, p95, p99) and multi-backend support (Prometheus,
// Jaeger, DataDog, Grafana).
//
// # Usage
//
//	import (
//	    "github.com/agilira/xanthos"
//	    xanthosotel "github.com/agilira/xanthos/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	// Setup OTEL with Prometheus exporter
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	// Create collector
//	collector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	// Configure xanthos cache
//	cache := xanthos.NewCache[string, string](xanthos.Config{
//	    MaxCapacity:      10000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
//   - xanthos_get_latency_ns: Histogram of Get() operation latencies in nanoseconds
//   - xanthos_set_latency_ns: Histogram of Set() operation latencies in nanoseconds
//   - xanthos_delete_latency_ns: Histogram of Remove()/Invalidate() latencies in nanoseconds
//   - xanthos_get_hits_total: Counter of cache hits
//   - xanthos_get_misses_total: Counter of cache misses
//   - xanthos_evictions_total: Counter of evictions
//
// All metrics are aggregated by the OTEL SDK and can be exported to any
// OTEL-compatible backend. Histograms automatically calculate percentiles.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
