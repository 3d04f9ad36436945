// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

import (
	"math/bits"

	"github.com/33cn/intitan/common/digits"
)

func maxLen(x, y Integer) int {
	if x.digits.Len() > y.digits.Len() {
		return x.digits.Len()
	}
	return y.digits.Len()
}

// Add returns x + y. Negative operands are reduced to subtractions so the
// carry kernel only ever sees non-negative values.
func Add(x, y Integer) Integer {
	switch {
	case x.neg && y.neg:
		// -x + (-y) = -(x + y)
		return Negate(Add(Abs(x), Abs(y)))
	case x.neg && !y.neg:
		// -x + y = y - x
		return Sub(y, Abs(x))
	case !x.neg && y.neg:
		// x + (-y) = x - y
		return Sub(x, Abs(y))
	}
	b := digits.NewBuilder()
	var carry uint32
	for i := 0; i < maxLen(x, y); i++ {
		sum, c := bits.Add32(digit(x, i), digit(y, i), carry)
		b.Append(sum)
		carry = c
	}
	if carry == 1 {
		b.Append(1)
	}
	// the kernel cannot produce trailing zeros, no Norm needed
	return New(b.Vector(), false)
}

// Sub returns x - y. The magnitude check comes first so the borrow kernel
// only ever runs with x >= y >= 0; every other sign combination reduces to
// that case or to an addition.
func Sub(x, y Integer) Integer {
	if Less(x, y) {
		// x - y = -(y - x)
		return Negate(Sub(y, x))
	}
	switch {
	case x.neg && y.neg:
		// -x - (-y) = -(x - y); the recursive call re-checks magnitudes
		return Negate(Sub(Abs(x), Abs(y)))
	case x.neg && !y.neg:
		// -x - y = -(x + y)
		return Negate(Add(Abs(x), y))
	case !x.neg && y.neg:
		// x - (-y) = x + y
		return Add(x, Abs(y))
	}
	b := digits.NewBuilder()
	var borrow uint32
	for i := 0; i < maxLen(x, y); i++ {
		diff, bo := bits.Sub32(digit(x, i), digit(y, i), borrow)
		b.Append(diff)
		borrow = bo
	}
	// borrow can zero out high digits, canonicalize
	return New(b.Vector().Norm(), false)
}

// ShiftLeft returns x * B^k (B = 2^32) by prepending k zero digits. Zero
// shifts to itself, keeping the empty canonical representation.
func ShiftLeft(x Integer, k int) Integer {
	if x.IsZero() {
		return x
	}
	ds := x.digits
	for i := 0; i < k; i++ {
		ds = ds.Prepend(0)
	}
	x.digits = ds
	return x
}

// ShiftRight returns x / B^k, truncating toward zero in the magnitude, by
// dropping the k low-order digits. Dropping every digit yields canonical
// zero with the sign flag cleared.
func ShiftRight(x Integer, k int) Integer {
	ds := x.digits.DropFront(k)
	if ds.IsEmpty() {
		return Zero
	}
	return New(ds, x.neg)
}
