// policy.go: read-only snapshot of a cache's bounding policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Policy is a read-only snapshot of a cache's bounding policy.
// The policy cannot be modified after cache creation.
type Policy struct {
	maxCapacity uint64
	bounded     bool
}

// MaxCapacity returns the capacity limit and whether one is set.
// The second return is false for an unbounded cache.
func (p Policy) MaxCapacity() (uint64, bool) {
	return p.maxCapacity, p.bounded
}
