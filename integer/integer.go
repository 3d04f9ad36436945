// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integer implements an immutable arbitrary-precision signed
// integer. A value is a little-endian sequence of base-2^32 digits plus a
// sign flag. Canonical form has no zero digit at the high-order end and
// represents zero as the empty sequence with a false sign flag; every
// public operation returns canonical values. Operations never mutate their
// inputs, so values may be shared freely across goroutines.
package integer

import (
	"errors"

	"github.com/33cn/intitan/common/digits"
)

var (
	// ErrDivideByZero divisor is zero
	ErrDivideByZero = errors.New("ErrDivideByZero")
	// ErrInvalidHexLiteral literal contains a character outside [0-9A-Fa-f]
	ErrInvalidHexLiteral = errors.New("ErrInvalidHexLiteral")
	// ErrUnsupportedBase only hexadecimal text is supported
	ErrUnsupportedBase = errors.New("ErrUnsupportedBase")
)

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	digits digits.Vector
	neg    bool
}

// Zero is the canonical zero: empty digits, non-negative.
var Zero = Integer{}

// New constructs an Integer from a raw digit vector and sign flag. The
// vector is taken as is; callers that may hand in trailing zero digits
// canonicalize with digits.Norm first.
func New(ds digits.Vector, negative bool) Integer {
	return Integer{digits: ds, neg: negative}
}

// Digits returns the digit vector, least significant digit first.
func (x Integer) Digits() digits.Vector {
	return x.digits
}

// IsZero reports whether x is zero.
func (x Integer) IsZero() bool {
	return x.digits.IsEmpty()
}

// IsNegative reports the sign flag. Canonical zero is never negative.
func (x Integer) IsNegative() bool {
	return x.neg
}

// Sign returns -1 when x < 0, 0 when x = 0 and 1 otherwise.
func (x Integer) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// String renders x as an uppercase hex literal.
func (x Integer) String() string {
	return ToHex(x, true)
}

// Negate flips the sign flag, leaving the digits untouched. Negating zero
// yields a value that still compares equal to zero.
func Negate(x Integer) Integer {
	x.neg = !x.neg
	return x
}

// Abs clears the sign flag.
func Abs(x Integer) Integer {
	x.neg = false
	return x
}

// digit returns digit i of x, 0 past the high-order end.
func digit(x Integer, i int) uint32 {
	return x.digits.At(i)
}

// Less reports whether x is strictly smaller than y under signed order.
func Less(x, y Integer) bool {
	if x.IsZero() && y.IsZero() {
		return false
	}
	if x.neg != y.neg {
		return x.neg
	}
	if x.neg {
		// both negative: x < y iff |y| < |x|
		return Less(Abs(y), Abs(x))
	}
	if x.digits.Len() != y.digits.Len() {
		return x.digits.Len() < y.digits.Len()
	}
	for i := x.digits.Len() - 1; i >= 0; i-- {
		if a, b := x.digits.Get(i), y.digits.Get(i); a != b {
			return a < b
		}
	}
	return false
}

// Equal reports whether x and y denote the same value. Two zeros are equal
// whatever their sign flags say.
func Equal(x, y Integer) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	return x.neg == y.neg && x.digits.Equal(y.digits)
}
