// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"strings"
	"testing"
)

// TestChecksumVectors ensures the checksum of known valid addresses verifies
// regardless of the size of their data parts and fails once the prefix is
// changed.
func TestChecksumVectors(t *testing.T) {
	tests := []string{
		"prefix:x64nx6hz",
		"p:gpf8m4h7",
		"bitcoincash:qpzry9x8gf2tvdw0s3jn54khce6mua7lcw20ayyn",
		"bchtest:testnetaddress4d6njnut",
		"bchreg:555555555555555555555555555555555555555555555udxmlmrz",
	}

	for _, test := range tests {
		idx := strings.LastIndexByte(test, separator)
		prefix, dataPart := test[:idx], test[idx+1:]
		groups, err := decodeSymbols(dataPart)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test, err)
			continue
		}
		if !verifyChecksum(prefix, groups) {
			t.Errorf("%q: checksum does not verify", test)
			continue
		}
		if verifyChecksum(prefix+"x", groups) {
			t.Errorf("%q: checksum verifies with the wrong prefix", test)
			continue
		}
	}
}

// TestCreateChecksum ensures created checksums are the ones expected and make
// the full checksum input evaluate to zero.
func TestCreateChecksum(t *testing.T) {
	tests := []struct {
		prefix string
		data   string
		want   string
	}{
		{"prefix", "", "x64nx6hz"},
		{"p", "", "gpf8m4h7"},
		{"bitcoincash", "qpzry9x8gf2tvdw0s3jn54khce6mua7l", "cw20ayyn"},
		{"bitcoincash", "qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq", "fnhks603"},
	}

	for _, test := range tests {
		groups, err := decodeSymbols(test.data)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.data, err)
			continue
		}
		checksum := createChecksum(test.prefix, groups)
		got := string(encodeSymbols(nil, checksum[:]))
		if got != test.want {
			t.Errorf("%q: mismatched checksum -- got %s, want %s", test.data,
				got, test.want)
			continue
		}
		if !verifyChecksum(test.prefix, append(groups, checksum[:]...)) {
			t.Errorf("%q: created checksum does not verify", test.data)
			continue
		}
	}
}

// TestPolyModIdentity ensures the checksum of an empty input is the initial
// accumulator value with the final xor applied.
func TestPolyModIdentity(t *testing.T) {
	if got := polyMod(nil); got != 0 {
		t.Fatalf("unexpected checksum of empty input -- got %#x, want 0", got)
	}
	if got := polyMod([]byte{0}); got == 0 {
		t.Fatal("appending a zero to a valid input must not verify")
	}
}

// TestCharset ensures every character of the alphabet round trips through the
// reverse lookup table in both cases and that other characters are rejected.
func TestCharset(t *testing.T) {
	for i := 0; i < len(charset); i++ {
		lower := charset[i : i+1]
		upper := strings.ToUpper(lower)
		for _, s := range []string{lower, upper} {
			groups, err := decodeSymbols(s)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", s, err)
			}
			if groups[0] != byte(i) {
				t.Fatalf("%q: got value %d, want %d", s, groups[0], i)
			}
		}
	}

	for _, s := range []string{"1", "b", "i", "o", "B", "I", "O", ":", "\x80",
		"\xff", " "} {

		if _, err := decodeSymbols(s); err == nil {
			t.Fatalf("%q: expected invalid character error", s)
		}
	}
}

// TestClassifyCase ensures letters are classified as expected.
func TestClassifyCase(t *testing.T) {
	tests := []struct {
		in   string
		want letterCase
	}{
		{"", caseNone},
		{"0123456789", caseNone},
		{"bitcoincash", caseLower},
		{"q9x8", caseLower},
		{"BITCOINCASH", caseUpper},
		{"Q9X8", caseUpper},
		{"BitcoinCash", caseMixed},
		{"qQ", caseMixed},
	}

	for _, test := range tests {
		if got := classifyCase(test.in); got != test.want {
			t.Errorf("%q: got case %d, want %d", test.in, got, test.want)
		}
	}
}
