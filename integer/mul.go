// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

import "github.com/33cn/intitan/common/digits"

// Mul returns x * y by school-book long multiplication: x is multiplied by
// each digit of y and the partial products are accumulated at their shifted
// positions.
func Mul(x, y Integer) Integer {
	if y.digits.Len() > x.digits.Len() {
		// keep the shorter operand on the right to bound the outer loop
		return Mul(y, x)
	}
	neg := x.neg != y.neg
	x, y = Abs(x), Abs(y)
	result := Zero
	for i := 0; i < y.digits.Len(); i++ {
		partial := mulDigit(x, y.digits.Get(i))
		result = Add(result, ShiftLeft(partial, i))
	}
	if result.IsZero() {
		return Zero
	}
	result.neg = neg
	return result
}

// mulDigit multiplies x by a single digit. Each per-digit product fits in
// 64 bits, so the carry chain is one wider word. The result keeps the sign
// of x.
func mulDigit(x Integer, d uint32) Integer {
	b := digits.NewBuilder()
	var carry uint32
	for i := 0; i < x.digits.Len(); i++ {
		p := uint64(x.digits.Get(i))*uint64(d) + uint64(carry)
		b.Append(uint32(p))
		carry = uint32(p >> 32)
	}
	if carry != 0 {
		b.Append(carry)
	}
	return New(b.Vector().Norm(), x.neg)
}
