// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consttime provides comparison of secret or otherwise sensitive byte
// sequences in time that does not depend on their contents.
package consttime

import "crypto/subtle"

// Equal returns whether a and b contain the same bytes.
//
// The time taken depends only on the lengths of the inputs.  All bytes are
// always compared, regardless of where the first difference occurs.  Inputs of
// different lengths are never equal.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return subtle.ConstantTimeByteEq(diff, 0) == 1
}
