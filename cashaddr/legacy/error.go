// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package legacy

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedAddress indicates a legacy address is not valid base58check
	// or does not carry a 20 byte hash.
	ErrMalformedAddress = ErrorKind("ErrMalformedAddress")

	// ErrUnknownVersion indicates a legacy address has a version byte that
	// is not used by the network it is being converted for.
	ErrUnknownVersion = ErrorKind("ErrUnknownVersion")

	// ErrUnrepresentable indicates a cashaddr address has a type or hash size
	// that can not be represented by a legacy address.
	ErrUnrepresentable = ErrorKind("ErrUnrepresentable")

	// ErrWrongNetwork indicates a cashaddr address carries the prefix of a
	// network other than the one it is being converted for.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a legacy address conversion error.
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
