// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidPrefix indicates a prefix is empty, longer than the maximum
	// allowed length, contains characters other than letters, or mixes upper
	// and lower case.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrInvalidCharacter indicates an address contains a character that is
	// not part of the encoding alphabet or a data part that does not use the
	// same case as its prefix.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrChecksumMismatch indicates the checksum of an address does not
	// verify against its prefix and data.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidSize indicates a hash is not one of the permitted sizes, a
	// data part is too short or too long, or the hash recovered from an
	// address does not match the size encoded in its version byte.
	ErrInvalidSize = ErrorKind("ErrInvalidSize")

	// ErrInvalidType indicates an address type does not fit in 4 bits.
	ErrInvalidType = ErrorKind("ErrInvalidType")

	// ErrInvalidBitConversion indicates a bit regrouping was requested with
	// unsupported parameters, was given a value that does not fit in the
	// source group width, or would discard non-zero bits.
	ErrInvalidBitConversion = ErrorKind("ErrInvalidBitConversion")

	// ErrBufferTooSmall indicates an encoded address would exceed the
	// maximum address length.
	ErrBufferTooSmall = ErrorKind("ErrBufferTooSmall")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address encoding or decoding error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
