// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integer

import (
	"strings"

	"github.com/33cn/intitan/common/digits"
	"github.com/pkg/errors"
)

const (
	bitsPerHexChar = 4
	charsPerDigit  = 32 / bitsPerHexChar
)

// FromHex parses a hex literal with an optional leading + or -. The
// characters are walked from least significant to most significant, four
// bits at a time, packing eight characters into each 32-bit digit. An
// empty digit section parses to zero; so does any run of zero characters.
// A character outside [0-9A-Fa-f] yields ErrInvalidHexLiteral.
func FromHex(s string) (Integer, error) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	b := digits.NewBuilder()
	var cur uint32
	counter := 0
	for i := len(s) - 1; i >= 0; i-- {
		v, err := hexCharValue(s[i])
		if err != nil {
			return Zero, err
		}
		cur |= v << uint(bitsPerHexChar*counter)
		if counter++; counter == charsPerDigit {
			b.Append(cur)
			cur, counter = 0, 0
		}
	}
	if cur != 0 {
		b.Append(cur)
	}
	// leading zeros in the input leave trailing zero digits, strip them
	ds := b.Vector().Norm()
	if ds.IsEmpty() {
		// "-0" and friends collapse to canonical zero
		return Zero, nil
	}
	return New(ds, neg), nil
}

// FromString parses a literal in the given base. Only base 16 is
// supported.
func FromString(s string, base int) (Integer, error) {
	if base != 16 {
		return Zero, errors.Wrapf(ErrUnsupportedBase, "base %d", base)
	}
	return FromHex(s)
}

// ToHex renders x as a hex literal: a leading - for negative values, then
// the digits walked from most significant to least significant, four bits
// per character, with leading zero characters suppressed. Zero renders as
// "0".
func ToHex(x Integer, uppercase bool) string {
	var sb strings.Builder
	emitted := false
	var nib uint32
	counter := 0
	for i := x.digits.Len() - 1; i >= 0; i-- {
		d := x.digits.Get(i)
		for bit := 31; bit >= 0; bit-- {
			nib = nib<<1 | d>>uint(bit)&1
			if counter++; counter == bitsPerHexChar {
				if emitted || nib != 0 {
					sb.WriteByte(hexChar(nib, uppercase))
					emitted = true
				}
				nib, counter = 0, 0
			}
		}
	}
	if !emitted {
		return "0"
	}
	if x.neg {
		return "-" + sb.String()
	}
	return sb.String()
}

func hexCharValue(c byte) (uint32, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, nil
	}
	return 0, errors.Wrapf(ErrInvalidHexLiteral, "character %q", c)
}

func hexChar(v uint32, uppercase bool) byte {
	if v < 10 {
		return byte('0' + v)
	}
	if uppercase {
		return byte('A' + v - 10)
	}
	return byte('a' + v - 10)
}
