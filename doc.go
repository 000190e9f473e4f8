// Package xanthos provides a bounded, in-memory, single-threaded cache
// driven by a TinyLFU admission filter over an LRU eviction order.
//
// # Overview
//
// Xanthos is the single-threaded sibling of Balios. It trades away all
// synchronization: every operation assumes exclusive ownership of the cache
// instance, which makes reads and writes O(1) amortized with no atomic
// traffic at all. Use it from a single goroutine, or wrap it yourself.
//
// # Features
//
//   - TinyLFU Admission: a candidate enters a full cache only when its
//     estimated frequency beats the aggregated frequency of the LRU victims
//     it would displace
//   - LRU Eviction: batched reconciliation keeps every operation's worst
//     case latency bounded
//   - Type-Safe Generics: Cache[K comparable, V any]
//   - Frequency Sketch: count-min estimator with 4-bit saturating counters
//     and periodic aging, enabled lazily at half capacity
//   - Structured Errors: rich error context with error codes
//   - Metrics Collection: MetricsCollector interface for observability
//
// # Quick Start
//
//	import "github.com/agilira/xanthos"
//
//	func main() {
//	    // Create a cache that holds up to 10,000 entries.
//	    cache := xanthos.New[string, string](10_000)
//
//	    cache.Set("key", "value")
//
//	    if value, found := cache.Get("key"); found {
//	        fmt.Println(value)
//	    }
//
//	    stats := cache.Stats()
//	    fmt.Printf("Hit ratio: %.2f%%\n", stats.HitRatio())
//	}
//
// # Capacity Bounding
//
// Capacity bounding is best effort: a single Set may transiently overshoot
// the limit, and the overshoot is reconciled by a batched eviction pass that
// runs at the start of every Get, Has, Set, Remove, Invalidate and
// InvalidateEntriesIf. On return from any public method the entry count is
// back within the limit.
//
// # Observability
//
// The optional otel/ subpackage implements MetricsCollector on OpenTelemetry,
// and zaplog/ adapts go.uber.org/zap to the Logger interface.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos
