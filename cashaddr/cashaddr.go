// Copyright (c) 2017 The Bitcoin developers
// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"
	"strings"
)

const (
	// MaxAddressLen is the maximum length of an address string, inclusive
	// of the prefix, separator, data part and checksum.
	MaxAddressLen = 197

	// MaxPrefixLen is the maximum length of an address prefix.
	MaxPrefixLen = 83

	// MaxHashLen is the largest hash that can be encoded in an address.
	MaxHashLen = 64

	// MaxType is the largest address type.  Types are limited to 4 bits.
	MaxType = 15

	// separator separates the prefix from the data part.
	separator = ':'

	// maxDataGroups is the maximum number of 5-bit groups in the data part,
	// including the checksum.
	maxDataGroups = 112

	// maxDataBytes is the maximum number of bytes that may be serialized,
	// which is a version byte followed by the largest permitted hash.
	maxDataBytes = MaxHashLen + 1
)

// hashSizes houses the permitted hash sizes indexed by the size class stored in
// the low 3 bits of the version byte.
var hashSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

// sizeIndex returns the size class for the provided hash size.
func sizeIndex(size int) (byte, bool) {
	for i, s := range hashSizes {
		if s == size {
			return byte(i), true
		}
	}
	return 0, false
}

// IsValidHashSize returns whether a hash of the provided size may be encoded in
// an address.
func IsValidHashSize(size int) bool {
	_, ok := sizeIndex(size)
	return ok
}

// validatePrefix ensures the prefix is a non-empty run of letters that does not
// mix case and does not exceed the maximum length.  The lowercase form of the
// prefix is returned.
func validatePrefix(prefix string) (string, error) {
	if len(prefix) == 0 {
		return "", makeError(ErrInvalidPrefix, "prefix is empty")
	}
	if len(prefix) > MaxPrefixLen {
		str := fmt.Sprintf("prefix length of %d exceeds the max allowed "+
			"length of %d", len(prefix), MaxPrefixLen)
		return "", makeError(ErrInvalidPrefix, str)
	}
	for i := 0; i < len(prefix); i++ {
		ch := prefix[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			str := fmt.Sprintf("prefix contains non-letter character %q at "+
				"position %d", ch, i)
			return "", makeError(ErrInvalidPrefix, str)
		}
	}
	if classifyCase(prefix) == caseMixed {
		str := fmt.Sprintf("prefix %q mixes upper and lower case", prefix)
		return "", makeError(ErrInvalidPrefix, str)
	}
	return strings.ToLower(prefix), nil
}

// NormalizePrefix ensures the provided prefix may be used with addresses and
// returns its lowercase form.  A valid prefix is a non-empty run of at most
// MaxPrefixLen letters that does not mix upper and lower case.
func NormalizePrefix(prefix string) (string, error) {
	return validatePrefix(prefix)
}

// Serialize encodes the provided data, which must already begin with the
// version byte, into an address with the given prefix.
//
// The prefix is always emitted in lowercase along with the data part.  At most
// 65 bytes of data may be serialized.
func Serialize(prefix string, data []byte) (string, error) {
	prefix, err := validatePrefix(prefix)
	if err != nil {
		return "", err
	}
	if len(data) > maxDataBytes {
		str := fmt.Sprintf("data length of %d exceeds the max allowed "+
			"length of %d", len(data), maxDataBytes)
		return "", makeError(ErrInvalidSize, str)
	}

	groups, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	checksum := createChecksum(prefix, groups)

	addrLen := len(prefix) + 1 + len(groups) + checksumLen
	if addrLen > MaxAddressLen {
		str := fmt.Sprintf("address length of %d exceeds the max allowed "+
			"length of %d", addrLen, MaxAddressLen)
		return "", makeError(ErrBufferTooSmall, str)
	}

	addr := make([]byte, 0, addrLen)
	addr = append(addr, prefix...)
	addr = append(addr, separator)
	addr = encodeSymbols(addr, groups)
	addr = encodeSymbols(addr, checksum[:])
	return string(addr), nil
}

// Deserialize decodes the provided address and returns its lowercase prefix
// along with the decoded data, which still begins with the version byte.
//
// The address may omit the prefix and separator, in which case the provided
// default prefix is used to verify the checksum.  Since the checksum commits
// to the prefix, supplying the wrong default prefix results in
// ErrChecksumMismatch.
//
// The address must either be entirely lowercase or entirely uppercase.
func Deserialize(addr, defaultPrefix string) (string, []byte, error) {
	if len(addr) > MaxAddressLen {
		str := fmt.Sprintf("address length of %d exceeds the max allowed "+
			"length of %d", len(addr), MaxAddressLen)
		return "", nil, makeError(ErrInvalidSize, str)
	}

	// Split the prefix from the data part when the address carries one and
	// classify the case of the text found in the address.
	prefix, dataPart := defaultPrefix, addr
	addrCase := caseNone
	if idx := strings.LastIndexByte(addr, separator); idx >= 0 {
		prefix, dataPart = addr[:idx], addr[idx+1:]
		addrCase = classifyCase(prefix)
	}
	prefix, err := validatePrefix(prefix)
	if err != nil {
		return "", nil, err
	}
	if addrCase.merge(classifyCase(dataPart)) == caseMixed {
		str := "address mixes upper and lower case"
		return "", nil, makeError(ErrInvalidCharacter, str)
	}

	if len(dataPart) < checksumLen {
		str := fmt.Sprintf("data part length of %d is shorter than the "+
			"checksum length of %d", len(dataPart), checksumLen)
		return "", nil, makeError(ErrInvalidSize, str)
	}
	if len(dataPart) > maxDataGroups {
		str := fmt.Sprintf("data part length of %d exceeds the max "+
			"allowed length of %d", len(dataPart), maxDataGroups)
		return "", nil, makeError(ErrInvalidSize, str)
	}

	groups, err := decodeSymbols(dataPart)
	if err != nil {
		return "", nil, err
	}
	if !verifyChecksum(prefix, groups) {
		str := fmt.Sprintf("checksum of address %q does not verify with "+
			"prefix %q", addr, prefix)
		return "", nil, makeError(ErrChecksumMismatch, str)
	}

	data, err := convertBits(groups[:len(groups)-checksumLen], 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return prefix, data, nil
}

// Encode encodes the provided hash and address type into an address with the
// given prefix.
//
// The type must fit in 4 bits and the hash must be 20, 24, 28, 32, 40, 48, 56,
// or 64 bytes.
func Encode(prefix string, addrType uint8, hash []byte) (string, error) {
	if addrType > MaxType {
		str := fmt.Sprintf("address type %d exceeds the max allowed type %d",
			addrType, MaxType)
		return "", makeError(ErrInvalidType, str)
	}
	sizeIdx, ok := sizeIndex(len(hash))
	if !ok {
		str := fmt.Sprintf("hash length of %d is not a permitted size",
			len(hash))
		return "", makeError(ErrInvalidSize, str)
	}

	data := make([]byte, 0, 1+len(hash))
	data = append(data, addrType<<3|sizeIdx)
	data = append(data, hash...)
	return Serialize(prefix, data)
}

// Decode decodes the provided address and returns its lowercase prefix,
// address type, and hash.
//
// See Deserialize for details on the handling of the prefix.  In addition to
// the checks performed there, the version byte must describe a type that fits
// in 4 bits and a hash size that matches the decoded hash exactly.
func Decode(addr, defaultPrefix string) (string, uint8, []byte, error) {
	prefix, data, err := Deserialize(addr, defaultPrefix)
	if err != nil {
		return "", 0, nil, err
	}
	if len(data) == 0 {
		str := "address data is missing the version byte"
		return "", 0, nil, makeError(ErrInvalidSize, str)
	}

	version, hash := data[0], data[1:]
	if version&0x80 != 0 {
		str := fmt.Sprintf("version byte %#02x encodes a type that exceeds "+
			"the max allowed type %d", version, MaxType)
		return "", 0, nil, makeError(ErrInvalidType, str)
	}
	wantSize := hashSizes[version&0x07]
	if len(hash) != wantSize {
		str := fmt.Sprintf("decoded hash length of %d does not match the "+
			"length of %d required by version byte %#02x", len(hash),
			wantSize, version)
		return "", 0, nil, makeError(ErrInvalidSize, str)
	}

	return prefix, version >> 3, hash, nil
}

// Is returns whether the provided address is a well-formed address.  See
// Decode for the handling of the default prefix.
func Is(addr, defaultPrefix string) bool {
	_, _, _, err := Decode(addr, defaultPrefix)
	return err == nil
}

// Test is an alias for Is.
func Test(addr, defaultPrefix string) bool {
	return Is(addr, defaultPrefix)
}
