// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for the cache.
//
// The zero value describes a cache bounded at zero entries, which admits
// nothing. Set MaxCapacity for a useful bound, or Unbounded to lift the
// limit entirely.
type Config struct {
	// MaxCapacity is the maximum number of entries the cache can hold.
	// Ignored when Unbounded is true.
	MaxCapacity uint64

	// Unbounded disables capacity bounding. No admission filtering and no
	// eviction take place on an unbounded cache.
	Unbounded bool

	// InitialCapacity pre-sizes the hash table for the expected number of
	// entries. Must be >= 0. Default: 0 (no pre-sizing).
	InitialCapacity int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for latency measurement.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics (latencies,
	// hit/miss rates). If nil, NoOpMetricsCollector is used (zero overhead).
	// Use this to integrate with OpenTelemetry, Prometheus, or other
	// monitoring systems.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies defaults.
//
// This method is automatically called by NewCache and NewCacheWithHasher,
// so you typically don't need to call it manually. However, it's provided
// as a public API if you want to inspect the normalized configuration
// before creating a cache.
//
// Default values applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
//
// Returns an error when InitialCapacity is negative.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return NewErrInvalidInitialCapacity(c.InitialCapacity)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration bounded at maxCapacity entries.
func DefaultConfig(maxCapacity uint64) Config {
	return Config{
		MaxCapacity:      maxCapacity,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides ~121x faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
