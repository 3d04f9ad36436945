// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivBasics(t *testing.T) {
	for _, tc := range []struct {
		x, y, q, r string
	}{
		{"100000000", "3", "55555555", "1"},
		{"7", "A", "0", "7"},
		{"A", "7", "1", "3"},
		{"0", "7", "0", "0"},
		{"FFFFFFFE00000001", "FFFFFFFF", "FFFFFFFF", "0"},
		{"10000000000000000", "100000000", "100000000", "0"},
		{"123456789ABCDEF0123456789", "FEDCBA", "1249249D39783045CEC", "171411"},
		{"DEADBEEF", "DEADBEEF", "1", "0"},
		{"DEADBEEF", "1", "DEADBEEF", "0"},
	} {
		q, r, err := Div(mustHex(t, tc.x), mustHex(t, tc.y))
		require.NoError(t, err, "%s / %s", tc.x, tc.y)
		assert.Equal(t, tc.q, q.String(), "quotient %s / %s", tc.x, tc.y)
		assert.Equal(t, tc.r, r.String(), "remainder %s / %s", tc.x, tc.y)
	}
}

func TestDivSignConvention(t *testing.T) {
	// quotient: XOR of the signs; remainder: sign of the dividend
	for _, tc := range []struct {
		x, y, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"-7", "A", "0", "-7"},
		{"7", "-A", "0", "7"},
	} {
		q, r, err := Div(mustHex(t, tc.x), mustHex(t, tc.y))
		require.NoError(t, err)
		assert.Equal(t, tc.q, q.String(), "quotient %s / %s", tc.x, tc.y)
		assert.Equal(t, tc.r, r.String(), "remainder %s / %s", tc.x, tc.y)
	}
}

func TestDivByZero(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "FFFFFFFFFFFFFFFF"} {
		_, _, err := Div(mustHex(t, s), Zero)
		assert.ErrorIs(t, err, ErrDivideByZero, "%s / 0", s)
	}
}

func TestDivisionLaw(t *testing.T) {
	xs := parseSamples(t)
	for _, x := range xs {
		for _, y := range xs {
			if y.IsZero() {
				continue
			}
			q, r, err := Div(x, y)
			require.NoError(t, err, "%s / %s", x, y)
			assert.True(t, Equal(x, Add(Mul(q, y), r)), "x=q*y+r for %s / %s", x, y)
			assert.True(t, Less(Abs(r), Abs(y)), "|r|<|y| for %s / %s", x, y)
		}
	}
}

func TestDivResultsCanonical(t *testing.T) {
	xs := parseSamples(t)
	for _, x := range xs {
		for _, y := range xs {
			if y.IsZero() {
				continue
			}
			q, r, err := Div(x, y)
			require.NoError(t, err)
			for _, v := range []Integer{q, r} {
				if v.Digits().Len() > 0 {
					assert.NotZero(t, v.Digits().Get(v.Digits().Len()-1))
				} else {
					assert.False(t, v.IsNegative())
				}
			}
		}
	}
}

func TestSmallDivide(t *testing.T) {
	// single-digit quotient search over the full digit range
	assert.Equal(t, uint32(0x55555555), smallDivide(mustHex(t, "100000000"), mustHex(t, "3")))
	assert.Equal(t, uint32(0), smallDivide(mustHex(t, "2"), mustHex(t, "3")))
	assert.Equal(t, uint32(1), smallDivide(mustHex(t, "3"), mustHex(t, "3")))
	assert.Equal(t, uint32(0xFFFFFFFF), smallDivide(mustHex(t, "FFFFFFFF"), mustHex(t, "1")))
}
