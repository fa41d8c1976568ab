// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// checksumLen is the number of 5-bit groups that make up the checksum.
const checksumLen = 8

// polyMod computes the BCH checksum of the provided 5-bit values.
//
// The values are treated as the coefficients of a polynomial over GF(32) with
// an implicit leading 1, and the result is the remainder of that polynomial
// modulo the generator
//
//	g(x) = x^8 + {19}x^7 + {3}x^6 + {25}x^5 + {11}x^4 + {25}x^3 + {3}x^2 +
//	       {19}x + {1}
//
// packed into 40 bits, with the higher bits corresponding to the earlier
// coefficients.  The final xor with 1 means a valid checksum evaluates to 0.
func polyMod(values []byte) uint64 {
	chk := uint64(1)
	for _, v := range values {
		c0 := chk >> 35
		chk = (chk&0x07ffffffff)<<5 ^ uint64(v)

		// Add {2^n}k(x) for each bit n set in c0, where k(x) = x^8 mod g(x).
		if c0&0x01 != 0 {
			chk ^= 0x98f2bc8e61
		}
		if c0&0x02 != 0 {
			chk ^= 0x79b76d99e2
		}
		if c0&0x04 != 0 {
			chk ^= 0xf33e5fb3c4
		}
		if c0&0x08 != 0 {
			chk ^= 0xae2eabe2a8
		}
		if c0&0x10 != 0 {
			chk ^= 0x1e4f43e470
		}
	}
	return chk ^ 1
}

// expandPrefix returns the checksum input for the prefix, which is the low 5
// bits of each prefix character followed by a zero separator.  The prefix must
// only consist of letters, so the result is the same for either case.
func expandPrefix(prefix string, extra int) []byte {
	expanded := make([]byte, 0, len(prefix)+1+extra)
	for i := 0; i < len(prefix); i++ {
		expanded = append(expanded, prefix[i]&0x1f)
	}
	return append(expanded, 0)
}

// createChecksum returns the 8 checksum groups that bind the provided data
// groups to the prefix.
func createChecksum(prefix string, data []byte) [checksumLen]byte {
	values := expandPrefix(prefix, len(data)+checksumLen)
	values = append(values, data...)
	values = append(values, make([]byte, checksumLen)...)
	mod := polyMod(values)

	var checksum [checksumLen]byte
	for i := 0; i < checksumLen; i++ {
		checksum[i] = byte(mod >> (5 * (checksumLen - 1 - i)) & 0x1f)
	}
	return checksum
}

// verifyChecksum returns whether the provided data groups, which must include
// the trailing checksum groups, carry a valid checksum for the prefix.
func verifyChecksum(prefix string, data []byte) bool {
	values := expandPrefix(prefix, len(data))
	values = append(values, data...)
	return polyMod(values) == 0
}
