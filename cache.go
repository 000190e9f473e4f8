// cache.go: TinyLFU-admitted, LRU-evicted single-threaded cache core
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"
)

// valueEntry is the per-key payload plus its deque attachment. The node
// handle, when present, identifies a live node in the deque named by its
// region tag, and that node's key equals this entry's hash table key.
type valueEntry[K comparable, V any] struct {
	value V
	ref   nodeRef[K]
}

func newValueEntry[K comparable, V any](value V) *valueEntry[K, V] {
	return &valueEntry[K, V]{value: value}
}

// stealNodeFrom takes other's node handle, leaving other handle-less so the
// old entry can be discarded safely.
func (e *valueEntry[K, V]) stealNodeFrom(other *valueEntry[K, V]) {
	e.ref = other.takeNode()
}

// takeNode detaches and returns the node handle.
func (e *valueEntry[K, V]) takeNode() nodeRef[K] {
	ref := e.ref
	e.ref = nodeRef[K]{}
	return ref
}

func (e *valueEntry[K, V]) policyWeight() uint32 {
	return 1
}

// Cache is a bounded, in-memory, single-threaded associative cache.
//
// Cache keeps a soft upper bound on its entry count: a full cache admits a
// new entry only when the TinyLFU filter estimates the candidate to be more
// popular than the least-recently-used entries it would displace, and any
// transient overshoot is reconciled by a batched eviction pass at the start
// of Get, Has, Set, Remove, Invalidate and InvalidateEntriesIf.
//
// Cache is NOT safe for concurrent use. Every method assumes exclusive
// ownership of the instance.
type Cache[K comparable, V any] struct {
	maxCapacity   uint64
	bounded       bool
	entryCount    uint64
	cache         map[K]*valueEntry[K, V]
	hasher        Hasher[K]
	deques        deques[K]
	sketch        frequencySketch
	sketchEnabled bool

	logger    Logger
	timer     TimeProvider
	collector MetricsCollector

	// statistics, plain counters: the single-thread contract makes atomics
	// unnecessary
	hits      uint64
	misses    uint64
	sets      uint64
	deletes   uint64
	evictions uint64
}

// New creates a cache bounded at maxCapacity entries with the default
// configuration and a randomized hash-flood-resistant hasher.
func New[K comparable, V any](maxCapacity uint64) *Cache[K, V] {
	return NewCache[K, V](DefaultConfig(maxCapacity))
}

// NewCache creates a cache from cfg using the default hasher.
func NewCache[K comparable, V any](cfg Config) *Cache[K, V] {
	return NewCacheWithHasher[K, V](cfg, defaultHasher[K]())
}

// NewCacheWithHasher creates a cache from cfg with a caller-supplied hasher.
// The hasher feeds the frequency sketch; supply one when the default is not
// appropriate, for example to share hash work with another component.
// Panics on a nil hasher or an invalid configuration: both are programming
// errors, not runtime conditions.
func NewCacheWithHasher[K comparable, V any](cfg Config, hasher Hasher[K]) *Cache[K, V] {
	if hasher == nil {
		panic(NewErrInvalidHasher())
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	c := &Cache[K, V]{
		maxCapacity: cfg.MaxCapacity,
		bounded:     !cfg.Unbounded,
		cache:       make(map[K]*valueEntry[K, V], cfg.InitialCapacity),
		hasher:      hasher,
		deques:      newDeques[K](),
		logger:      cfg.Logger,
		timer:       cfg.TimeProvider,
		collector:   cfg.MetricsCollector,
	}

	c.logger.Debug("cache created",
		"max_capacity", cfg.MaxCapacity,
		"bounded", c.bounded,
		"initial_capacity", cfg.InitialCapacity)

	return c
}

// defaultHasher builds a maphash-backed hasher with a fresh random seed.
// The randomized seed resists hash flooding on the sketch probes.
func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Policy returns a read-only snapshot of this cache's bounding policy.
func (c *Cache[K, V]) Policy() Policy {
	return Policy{maxCapacity: c.maxCapacity, bounded: c.bounded}
}

// EntryCount returns the number of entries in this cache.
func (c *Cache[K, V]) EntryCount() uint64 {
	return c.entryCount
}

// WeightedSize returns the total weighted size of entries in this cache.
// Every entry weighs 1, so this equals EntryCount.
func (c *Cache[K, V]) WeightedSize() uint64 {
	return c.entryCount
}

// Len returns the number of entries in this cache as an int.
func (c *Cache[K, V]) Len() int {
	return int(c.entryCount)
}

// Stats returns a snapshot of the cache's operation counters.
func (c *Cache[K, V]) Stats() CacheStats {
	return CacheStats{
		Hits:       c.hits,
		Misses:     c.misses,
		Sets:       c.sets,
		Deletes:    c.deletes,
		Evictions:  c.evictions,
		EntryCount: c.entryCount,
	}
}

// Has reports whether the cache holds a value for key.
//
// Unlike Get, Has is not considered a cache read: it does not update the
// frequency sketch and does not touch the LRU order.
func (c *Cache[K, V]) Has(key K) bool {
	c.evictLRUEntries()
	_, ok := c.cache[key]
	return ok
}

// Get returns the value stored for key and whether one was present.
//
// A hit refreshes the entry's recency; every Get, hit or miss, records the
// access in the frequency sketch so the admission filter learns about keys
// the cache does not hold yet.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := c.timer.Now()
	c.evictLRUEntries()
	c.sketch.increment(c.hasher(key))

	if entry, ok := c.cache[key]; ok {
		c.deques.moveToBack(entry.ref)
		c.hits++
		c.collector.RecordGet(c.timer.Now()-start, true)
		return entry.value, true
	}

	c.misses++
	c.collector.RecordGet(c.timer.Now()-start, false)
	var zero V
	return zero, false
}

// Set inserts a key-value pair into the cache.
//
// If the cache holds this key already, the value is replaced and the entry's
// recency refreshed. A fresh key on a full cache goes through the TinyLFU
// admission filter and may be rejected; rejection leaves the cache unchanged.
func (c *Cache[K, V]) Set(key K, value V) {
	start := c.timer.Now()
	c.evictLRUEntries()

	entry := newValueEntry[K, V](value)
	old, existed := c.cache[key]
	c.cache[key] = entry

	if existed {
		c.handleUpdate(entry, old)
	} else {
		c.handleInsert(key, c.hasher(key), entry)
	}

	c.sets++
	c.collector.RecordSet(c.timer.Now() - start)
}

// handleUpdate steals the old entry's deque node into the new entry and
// refreshes its recency. The old value is dropped with the old entry.
func (c *Cache[K, V]) handleUpdate(entry, old *valueEntry[K, V]) {
	entry.stealNodeFrom(old)
	c.deques.moveToBack(entry.ref)
}

// handleInsert runs the admission protocol for a fresh key that is already
// present in the hash table but not yet linked into the access order.
func (c *Cache[K, V]) handleInsert(key K, hash uint64, entry *valueEntry[K, V]) {
	const weight = 1

	if c.hasEnoughCapacity(weight, c.entryCount) {
		entry.ref = c.deques.pushBack(regionMainProbation, key, hash)
		c.entryCount++
		if c.shouldEnableFrequencySketch() {
			c.enableFrequencySketch()
		}
		return
	}

	if c.bounded && weight > c.maxCapacity {
		// The candidate alone exceeds the capacity. Reject it.
		delete(c.cache, key)
		return
	}

	candidate := entrySizeAndFrequency{weight: weight}
	candidate.addFrequency(&c.sketch, hash)

	victimNodes, admitted := c.admit(&candidate)
	if !admitted {
		// Roll back the earlier map insertion; victims stay in place.
		delete(c.cache, key)
		return
	}

	for _, victim := range victimNodes {
		vicEntry, ok := c.cache[victim.key]
		if !ok {
			panic(NewErrInternal("admit",
				fmt.Errorf("cannot remove victim %v from the hash table", victim.key)))
		}
		delete(c.cache, victim.key)
		c.deques.unlink(vicEntry.takeNode())
		c.entryCount--
		c.evictions++
		c.collector.RecordEviction()
	}

	entry.ref = c.deques.pushBack(regionMainProbation, key, hash)
	c.entryCount++
	if c.shouldEnableFrequencySketch() {
		c.enableFrequencySketch()
	}
}

// admit aggregates potential victims from the LRU end of probation and
// decides whether the candidate may displace them.
//
// The decision follows TinyLFU with two deliberate differences: admission
// requires the candidate's frequency to be strictly greater than the
// victims' aggregate, and rejected victims keep their LRU positions, so a
// burst of cold candidates re-evaluates cheaply against the same victims.
func (c *Cache[K, V]) admit(candidate *entrySizeAndFrequency) ([]*deqNode[K], bool) {
	var victims entrySizeAndFrequency
	var victimNodes []*deqNode[K]

	nextVictim := c.deques.probation.peekFront()

	for victims.weight < candidate.weight {
		if candidate.freq < victims.freq {
			break
		}
		if nextVictim == nil {
			break
		}
		victim := nextVictim
		nextVictim = victim.next

		victims.addPolicyWeight()
		victims.addFrequency(&c.sketch, victim.hash)
		victimNodes = append(victimNodes, victim)
	}

	if victims.weight >= candidate.weight && candidate.freq > victims.freq {
		return victimNodes, true
	}
	return nil, false
}

// Remove discards any cached value for key, returning it.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	start := c.timer.Now()
	c.evictLRUEntries()

	if entry, ok := c.cache[key]; ok {
		delete(c.cache, key)
		c.deques.unlink(entry.takeNode())
		c.entryCount--
		c.deletes++
		c.collector.RecordDelete(c.timer.Now() - start)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Invalidate discards any cached value for key.
func (c *Cache[K, V]) Invalidate(key K) {
	c.Remove(key)
}

// InvalidateAll discards all cached values.
//
// Like Invalidate, this does not clear the frequency sketch, so the cache
// retains what it learned about key popularity.
//
// The hash table is swapped for a fresh one before any state is released:
// the cache is observably empty and consistent from the first moment of the
// call, whatever the old values' lifetimes do afterwards.
func (c *Cache[K, V]) InvalidateAll() {
	old := c.cache
	c.cache = make(map[K]*valueEntry[K, V], len(old))
	c.deques.clear()
	invalidated := c.entryCount
	c.entryCount = 0
	c.deletes += invalidated

	clear(old)

	c.logger.Debug("cache invalidated", "entries", invalidated)
}

// Clear removes all entries from the cache. Equivalent to InvalidateAll.
func (c *Cache[K, V]) Clear() {
	c.InvalidateAll()
}

// InvalidateEntriesIf discards every cached value for which predicate
// returns true.
//
// Matching keys are collected in a snapshot pass before any removal, so the
// predicate observes a consistent cache and never an iteration being
// mutated underneath it. Panics on a nil predicate.
func (c *Cache[K, V]) InvalidateEntriesIf(predicate func(key K, value V) bool) {
	if predicate == nil {
		panic(NewErrInvalidPredicate("InvalidateEntriesIf"))
	}
	c.evictLRUEntries()

	keysToInvalidate := make([]K, 0)
	for key, entry := range c.cache {
		if predicate(key, entry.value) {
			keysToInvalidate = append(keysToInvalidate, key)
		}
	}

	var invalidated uint64
	for _, key := range keysToInvalidate {
		if entry, ok := c.cache[key]; ok {
			delete(c.cache, key)
			c.deques.unlink(entry.takeNode())
			invalidated++
		}
	}
	c.entryCount -= invalidated
	c.deletes += invalidated
}

// Iter returns an iterator over all key-value pairs in the hash table's
// traversal order.
//
// Unlike Get, visiting entries through the iterator does not update the
// frequency sketch or the LRU order, and no eviction pass runs.
func (c *Cache[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, entry := range c.cache {
			if !yield(key, entry.value) {
				return
			}
		}
	}
}

// String renders the cache contents as a map-like string. Entry order
// follows the hash table's traversal order.
func (c *Cache[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, entry := range c.cache {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", key, entry.value)
	}
	sb.WriteByte('}')
	return sb.String()
}

//
// capacity and sketch management
//

func (c *Cache[K, V]) hasEnoughCapacity(candidateWeight, currentWeight uint64) bool {
	if !c.bounded {
		return true
	}
	return currentWeight+candidateWeight <= c.maxCapacity
}

func (c *Cache[K, V]) weightsToEvict() uint64 {
	if !c.bounded || c.entryCount <= c.maxCapacity {
		return 0
	}
	return c.entryCount - c.maxCapacity
}

// shouldEnableFrequencySketch reports whether the one-shot lazy enablement
// threshold has been crossed: half of a bounded capacity.
func (c *Cache[K, V]) shouldEnableFrequencySketch() bool {
	if c.sketchEnabled || !c.bounded {
		return false
	}
	return c.entryCount >= c.maxCapacity/2
}

func (c *Cache[K, V]) enableFrequencySketch() {
	if !c.bounded {
		return
	}
	c.sketch.ensureCapacity(sketchCapacity(c.maxCapacity))
	c.sketchEnabled = true
	c.logger.Debug("frequency sketch enabled", "table_len", c.sketch.tableLen())
}

// enableFrequencySketchForTesting activates the sketch immediately so tests
// can exercise admission decisions on a cache that is not yet half full.
func (c *Cache[K, V]) enableFrequencySketchForTesting() {
	c.enableFrequencySketch()
}

// sketchCapacity maps a cache capacity to the counter capacity requested
// from the sketch, clamped into [minSketchCapacity, max uint32].
func sketchCapacity(maxCapacity uint64) uint64 {
	if maxCapacity > 1<<32-1 {
		maxCapacity = 1<<32 - 1
	}
	if maxCapacity < minSketchCapacity {
		return minSketchCapacity
	}
	return maxCapacity
}

// evictLRUEntries reconciles capacity overshoot, removing at most
// evictionBatchSize entries from the LRU end of probation. It runs at the
// start of Get, Has, Set, Remove (and so Invalidate) and InvalidateEntriesIf;
// repeated operations drain any backlog a single pass cannot.
func (c *Cache[K, V]) evictLRUEntries() {
	weightsToEvict := c.weightsToEvict()
	var evictedCount, evictedWeight uint64

	probation := &c.deques.probation

	for i := 0; i < evictionBatchSize; i++ {
		if evictedWeight >= weightsToEvict {
			break
		}

		front := probation.peekFront()
		if front == nil {
			break
		}
		key := front.key

		if entry, ok := c.cache[key]; ok {
			delete(c.cache, key)
			weight := entry.policyWeight()
			unlinkFromDeque(probation, entry.takeNode())
			evictedCount++
			evictedWeight += uint64(weight)
			c.collector.RecordEviction()
		} else {
			// The head node has no hash table entry. That breaks an
			// invariant; drop the orphan node and keep going.
			probation.popFront()
		}
	}

	c.entryCount -= evictedCount
	c.evictions += evictedCount
}

// entrySizeAndFrequency accumulates weight and estimated frequency for one
// side of an admission decision.
type entrySizeAndFrequency struct {
	weight uint64
	freq   uint32
}

func (e *entrySizeAndFrequency) addPolicyWeight() {
	e.weight++
}

func (e *entrySizeAndFrequency) addFrequency(sketch *frequencySketch, hash uint64) {
	e.freq += uint32(sketch.frequency(hash))
}
