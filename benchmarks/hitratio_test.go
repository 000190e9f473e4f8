// hitratio_test.go: hit ratio comparison under skewed workloads
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package benchmarks

import (
	"testing"
)

// TestHitRatio measures hit ratios under a Zipf workload. The cache is a
// tenth of the key space, so the admission filter's job is to keep the hot
// head of the distribution resident.
func TestHitRatio(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping hit ratio test in short mode")
	}

	const (
		cacheSize = 100
		keySpace  = 1_000
		requests  = 100_000
	)

	caches := []struct {
		name    string
		factory func(int) CacheInterface
	}{
		{"Xanthos", NewXanthosCache},
		{"Ristretto", NewRistrettoCache},
	}

	for _, tc := range caches {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.factory(cacheSize)

			// Warmup with the same distribution as the measurement phase.
			zipf := NewZipfGenerator(1.2, 1.0, uint64(keySpace-1))
			for i := 0; i < keySpace; i++ {
				c.Set(zipf.NextString(), i)
			}

			hits := 0
			zipf = NewZipfGenerator(1.2, 1.0, uint64(keySpace-1))
			for i := 0; i < requests; i++ {
				key := zipf.NextString()
				if _, ok := c.Get(key); ok {
					hits++
				} else {
					c.Set(key, i)
				}
			}

			ratio := float64(hits) / float64(requests) * 100
			t.Logf("%s hit ratio: %.2f%% (%d/%d)", tc.name, ratio, hits, requests)

			// A cache a tenth of a strongly skewed key space should hold
			// the hot head; anything below this bound means the admission
			// policy is broken, not just suboptimal.
			if ratio < 30 {
				t.Errorf("hit ratio %.2f%% below sanity bound 30%%", ratio)
			}
		})
	}
}
