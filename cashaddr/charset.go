// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import "fmt"

// charset is the alphabet used to encode 5-bit groups.  The index of each
// character is the value it represents.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps lowercase ASCII characters back to the value they represent
// in charset.  Characters that are not part of the alphabet map to -1.
var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}()

// letterCase classifies the letters found in a string.
type letterCase uint8

const (
	// caseNone indicates no letters were seen.
	caseNone letterCase = iota

	// caseLower indicates only lowercase letters were seen.
	caseLower

	// caseUpper indicates only uppercase letters were seen.
	caseUpper

	// caseMixed indicates both lowercase and uppercase letters were seen.
	caseMixed
)

// merge returns the case that results from combining the letters classified
// by both c and other.
func (c letterCase) merge(other letterCase) letterCase {
	switch {
	case c == caseNone:
		return other
	case other == caseNone || other == c:
		return c
	}
	return caseMixed
}

// classifyCase returns the case of the letters in s.
func classifyCase(s string) letterCase {
	c := caseNone
	for i := 0; i < len(s) && c != caseMixed; i++ {
		switch ch := s[i]; {
		case ch >= 'a' && ch <= 'z':
			c = c.merge(caseLower)
		case ch >= 'A' && ch <= 'Z':
			c = c.merge(caseUpper)
		}
	}
	return c
}

// toLower returns the lowercase form of an ASCII letter and any other byte
// unchanged.
func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch | 0x20
	}
	return ch
}

// encodeSymbols returns the alphabet characters for the provided 5-bit
// groups.  All groups must be less than 32.
func encodeSymbols(dst []byte, groups []byte) []byte {
	for _, g := range groups {
		dst = append(dst, charset[g])
	}
	return dst
}

// decodeSymbols returns the 5-bit groups represented by the characters of s.
// The case of s must already have been checked for consistency, so letters of
// either case are accepted.
func decodeSymbols(s string) ([]byte, error) {
	groups := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ch := toLower(s[i])
		if ch >= 128 || charsetRev[ch] == -1 {
			str := fmt.Sprintf("invalid character %q at position %d of data "+
				"part", s[i], i)
			return nil, makeError(ErrInvalidCharacter, str)
		}
		groups[i] = byte(charsetRev[ch])
	}
	return groups, nil
}
