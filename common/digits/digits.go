// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digits implements the persistent digit sequence backing the
// arbitrary-precision integer type. A sequence holds base-2^32 digits in
// little-endian order: index 0 is the least significant digit.
package digits

import "github.com/benbjohnson/immutable"

var emptyList = immutable.NewList[uint32]()

// Vector is an immutable ordered sequence of 32-bit digits. The zero value
// is the empty sequence. Updates return a new Vector that shares structure
// with the old one, so any Vector may be read concurrently without locking.
type Vector struct {
	list *immutable.List[uint32]
}

// New creates a Vector holding the given digits, least significant first.
func New(ds ...uint32) Vector {
	b := immutable.NewListBuilder[uint32]()
	for _, d := range ds {
		b.Append(d)
	}
	return Vector{list: b.List()}
}

func (v Vector) l() *immutable.List[uint32] {
	if v.list == nil {
		return emptyList
	}
	return v.list
}

// Len returns the number of digits.
func (v Vector) Len() int {
	return v.l().Len()
}

// IsEmpty reports whether the sequence holds no digits.
func (v Vector) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the digit at index i. It panics when i is out of range.
func (v Vector) Get(i int) uint32 {
	return v.l().Get(i)
}

// At returns the digit at index i, or 0 when i is at or beyond the high
// end. The virtual zero lets kernels walk two sequences of unequal length.
func (v Vector) At(i int) uint32 {
	if i >= v.Len() {
		return 0
	}
	return v.l().Get(i)
}

// Append returns a Vector with d added at the high-order end.
func (v Vector) Append(d uint32) Vector {
	return Vector{list: v.l().Append(d)}
}

// Prepend returns a Vector with d added at the low-order end.
func (v Vector) Prepend(d uint32) Vector {
	return Vector{list: v.l().Prepend(d)}
}

// DropFront returns a Vector without the first k digits. Dropping Len or
// more digits yields the empty Vector.
func (v Vector) DropFront(k int) Vector {
	if k <= 0 {
		return v
	}
	if k >= v.Len() {
		return Vector{}
	}
	return Vector{list: v.l().Slice(k, v.Len())}
}

// Truncate returns a Vector without the digits at index k and above.
func (v Vector) Truncate(k int) Vector {
	if k <= 0 {
		return Vector{}
	}
	if k >= v.Len() {
		return v
	}
	return Vector{list: v.l().Slice(0, k)}
}

// Equal reports elementwise equality.
func (v Vector) Equal(o Vector) bool {
	if v.Len() != o.Len() {
		return false
	}
	it, ot := v.l().Iterator(), o.l().Iterator()
	for !it.Done() {
		_, a := it.Next()
		_, b := ot.Next()
		if a != b {
			return false
		}
	}
	return true
}

// Norm strips zero digits from the high-order end, returning the canonical
// form of the sequence.
func (v Vector) Norm() Vector {
	n := v.Len()
	for n > 0 && v.Get(n-1) == 0 {
		n--
	}
	return v.Truncate(n)
}

// Slice returns the digits as a plain []uint32 copy, least significant
// first.
func (v Vector) Slice() []uint32 {
	out := make([]uint32, 0, v.Len())
	it := v.l().Iterator()
	for !it.Done() {
		_, d := it.Next()
		out = append(out, d)
	}
	return out
}

// Builder accumulates digits one at a time and freezes them into a Vector.
// It is the transient counterpart of Vector and is not safe for concurrent
// use.
type Builder struct {
	b *immutable.ListBuilder[uint32]
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{b: immutable.NewListBuilder[uint32]()}
}

// Append adds d at the high-order end.
func (b *Builder) Append(d uint32) {
	b.b.Append(d)
}

// Len returns the number of digits accumulated so far.
func (b *Builder) Len() int {
	return b.b.Len()
}

// Vector freezes the accumulated digits. The Builder must not be used
// afterwards.
func (b *Builder) Vector() Vector {
	return Vector{list: b.b.List()}
}
