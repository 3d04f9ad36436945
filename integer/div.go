// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

// Div returns the quotient and remainder of x divided by y, or
// ErrDivideByZero when y is zero. The quotient carries the XOR of the
// operand signs and the remainder carries the sign of the dividend; under
// that convention x = q*y + r and |r| < |y| hold for every sign
// combination.
func Div(x, y Integer) (Integer, Integer, error) {
	if y.IsZero() {
		return Zero, Zero, ErrDivideByZero
	}
	if Less(Abs(x), Abs(y)) {
		return Zero, x, nil
	}
	qneg := x.neg != y.neg
	rneg := x.neg
	x, y = Abs(x), Abs(y)
	// Base-B long division, most significant digit of x first. carry is
	// the running partial remainder, always < y * B.
	carry := Zero
	quot := Zero
	for i := x.digits.Len() - 1; i >= 0; i-- {
		carry.digits = carry.digits.Prepend(x.digits.Get(i))
		d := smallDivide(carry, y)
		if !quot.digits.IsEmpty() || d != 0 {
			// suppress a leading zero at the high-order end
			quot.digits = quot.digits.Prepend(d)
		}
		carry = Sub(carry, mulDigit(y, d))
	}
	if !quot.digits.IsEmpty() {
		quot.neg = qneg
	}
	if !carry.IsZero() {
		carry.neg = rneg
	}
	return quot, carry, nil
}

// smallDivide finds the unique digit q with q*y <= x < (q+1)*y by binary
// search over the 32 bits of q, most significant bit first. The caller
// guarantees x < y * B so q fits in one digit.
func smallDivide(x, y Integer) uint32 {
	if Less(x, y) {
		return 0
	}
	var q uint32
	for i := 31; i >= 0; i-- {
		if !Less(x, mulDigit(y, q|1<<uint(i))) {
			q |= 1 << uint(i)
		}
	}
	return q
}
