// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cashaddr

import (
	"fmt"

	"github.com/decred/dcrd/bech32"
)

// convertBits regroups the bits of data from fromBits-sized groups into
// toBits-sized groups.  It is only used for the 8 to 5 bit conversion with
// padding and the 5 to 8 bit conversion without padding.
//
// When pad is true, any bits left over after the final full group are shifted
// left and emitted as one last zero-padded group.  When pad is false, at most 4
// leftover bits are allowed and they must all be zero, since otherwise
// information would be silently discarded.
func convertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	// bech32.ConvertBits discards the bits above fromBits, so values that do
	// not fit are rejected here.
	for i, value := range data {
		if value>>fromBits != 0 {
			str := fmt.Sprintf("invalid %d-bit value %d at index %d",
				fromBits, value, i)
			return nil, makeError(ErrInvalidBitConversion, str)
		}
	}

	regrouped, err := bech32.ConvertBits(data, fromBits, toBits, pad)
	if err != nil {
		str := fmt.Sprintf("unable to convert %d-bit groups to %d-bit "+
			"groups: %v", fromBits, toBits, err)
		return nil, makeError(ErrInvalidBitConversion, str)
	}
	return regrouped, nil
}

// ConvertBits regroups the bits of data between 8-bit bytes and the 5-bit
// groups used by the address data part.
//
// Only two conversions are supported: 8 to 5 bits with padding, which is used
// when encoding, and 5 to 8 bits without padding, which is used when decoding.
// Any other combination of parameters results in ErrInvalidBitConversion.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	switch {
	case fromBits == 8 && toBits == 5 && pad:
	case fromBits == 5 && toBits == 8 && !pad:
	default:
		str := fmt.Sprintf("unsupported bit conversion from %d to %d bits "+
			"(pad %v)", fromBits, toBits, pad)
		return nil, makeError(ErrInvalidBitConversion, str)
	}

	return convertBits(data, fromBits, toBits, pad)
}
