// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package cashaddr implements the cashaddr address format.

A cashaddr address consists of a prefix that identifies the network, the
separator ':', and a data part encoded with the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l".  The data part holds a version byte, the
hash being encoded, and an 8 character BCH checksum that commits to both the
data and the prefix.  For example:

	bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg2

The version byte combines a 4-bit address type with a 3-bit size class that
identifies the length of the hash, which must be one of 20, 24, 28, 32, 40, 48,
56, or 64 bytes.

# Encoding and Decoding

Encode and Decode work with an address type and hash directly, while Serialize
and Deserialize work with raw data that already begins with the version byte.

The prefix may be omitted from an address that is being decoded, in which case
the caller provides the prefix to assume.  Since the checksum commits to the
prefix, assuming the wrong prefix results in a checksum mismatch rather than a
silently misinterpreted address.

Addresses are always encoded in lowercase.  Decoding accepts addresses that are
entirely lowercase or entirely uppercase, but rejects addresses that mix both.

# Errors

Errors returned by this package are of type cashaddr.Error and fully support
the standard library errors.Is and errors.As functions.  This allows the caller
to programmatically determine the specific error by examining the ErrorKind
field of the type asserted cashaddr.Error while still providing rich error
messages with contextual information.  See the ErrorKind constants for the full
list of error kinds.
*/
package cashaddr
