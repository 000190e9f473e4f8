// benchmark_test.go: workload benchmarks for xanthos against other caches
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package benchmarks

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/agilira/xanthos"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Benchmark configuration
const (
	mediumCacheSize = 10_000
	mediumKeySpace  = 1_000

	// Workload ratios (read percentage)
	readHeavy = 0.9 // 90% reads, 10% writes
)

// =============================================================================
// ZIPF DISTRIBUTION GENERATOR
// =============================================================================

// ZipfGenerator generates keys following a Zipf distribution, simulating
// realistic access patterns where some items are much more popular than
// others (power law distribution).
type ZipfGenerator struct {
	zipf *rand.Zipf
}

// NewZipfGenerator creates a new Zipf distribution generator.
// s: exponent (must be > 1.0), v: offset (must be >= 1.0),
// imax: maximum value (key space).
func NewZipfGenerator(s, v float64, imax uint64) *ZipfGenerator {
	if imax < 1 {
		imax = 1
	}
	if s <= 1.0 {
		s = 1.01
	}
	if v < 1.0 {
		v = 1.0
	}
	rng := rand.New(rand.NewSource(42))
	return &ZipfGenerator{zipf: rand.NewZipf(rng, s, v, imax)}
}

func (z *ZipfGenerator) Next() uint64 {
	return z.zipf.Uint64()
}

func (z *ZipfGenerator) NextString() string {
	return strconv.FormatUint(z.Next(), 10)
}

// =============================================================================
// CACHE ADAPTERS
// =============================================================================

// CacheInterface provides a uniform interface for all caches under test.
type CacheInterface interface {
	Set(key string, value int)
	Get(key string) (int, bool)
}

type xanthosCache struct {
	c *xanthos.Cache[string, int]
}

func NewXanthosCache(size int) CacheInterface {
	return &xanthosCache{c: xanthos.New[string, int](uint64(size))}
}

func (x *xanthosCache) Set(key string, value int) { x.c.Set(key, value) }
func (x *xanthosCache) Get(key string) (int, bool) {
	return x.c.Get(key)
}

type ristrettoCache struct {
	c *ristretto.Cache[string, int]
}

func NewRistrettoCache(size int) CacheInterface {
	c, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters: int64(size) * 10,
		MaxCost:     int64(size),
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	return &ristrettoCache{c: c}
}

func (r *ristrettoCache) Set(key string, value int) {
	r.c.Set(key, value, 1)
}

func (r *ristrettoCache) Get(key string) (int, bool) {
	return r.c.Get(key)
}

// =============================================================================
// BENCHMARKS
// =============================================================================

func warmupCache(c CacheInterface, keySpace int) {
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
	for i := 0; i < keySpace; i++ {
		c.Set(zipf.NextString(), i)
	}
}

func benchmarkSet(b *testing.B, c CacheInterface, keySpace int) {
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(zipf.NextString(), i)
	}
}

func benchmarkGet(b *testing.B, c CacheInterface, keySpace int) {
	warmupCache(c, keySpace)
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(zipf.NextString())
	}
}

func benchmarkMixed(b *testing.B, c CacheInterface, keySpace int, readRatio float64) {
	warmupCache(c, keySpace)
	zipf := NewZipfGenerator(1.0, 1.0, uint64(keySpace-1))
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := zipf.NextString()
		if rng.Float64() < readRatio {
			c.Get(key)
		} else {
			c.Set(key, i)
		}
	}
}

func BenchmarkXanthos_Set(b *testing.B) {
	benchmarkSet(b, NewXanthosCache(mediumCacheSize), mediumKeySpace)
}

func BenchmarkRistretto_Set(b *testing.B) {
	benchmarkSet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace)
}

func BenchmarkXanthos_Get(b *testing.B) {
	benchmarkGet(b, NewXanthosCache(mediumCacheSize), mediumKeySpace)
}

func BenchmarkRistretto_Get(b *testing.B) {
	benchmarkGet(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace)
}

func BenchmarkXanthos_ReadHeavy(b *testing.B) {
	benchmarkMixed(b, NewXanthosCache(mediumCacheSize), mediumKeySpace, readHeavy)
}

func BenchmarkRistretto_ReadHeavy(b *testing.B) {
	benchmarkMixed(b, NewRistrettoCache(mediumCacheSize), mediumKeySpace, readHeavy)
}
