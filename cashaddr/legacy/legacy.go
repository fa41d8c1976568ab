// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package legacy converts between legacy base58check encoded addresses and
// cashaddr encoded addresses.
//
// Legacy addresses identify the network and the address type with a single
// version byte and only carry 20 byte hashes, so only pay-to-pubkey-hash and
// pay-to-script-hash addresses with 20 byte hashes can be converted in both
// directions.
package legacy

import (
	"errors"
	"fmt"

	"github.com/Gozala/bcrypto/cashaddr"
	"github.com/Gozala/bcrypto/cashaddr/stdaddr"
	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// AddressParams defines an interface that is used to provide the parameters
// required when converting addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrPrefix returns the cashaddr prefix of the network.
	AddrPrefix() string

	// LegacyPubKeyHashAddrID returns the version byte of legacy
	// pay-to-pubkey-hash addresses.
	LegacyPubKeyHashAddrID() byte

	// LegacyScriptHashAddrID returns the version byte of legacy
	// pay-to-script-hash addresses.
	LegacyScriptHashAddrID() byte
}

// ToCashAddr converts the provided legacy address for the network described by
// the params to its cashaddr encoding.
func ToCashAddr(legacyAddr string, params AddressParams) (string, error) {
	hash, version, err := base58.CheckDecode(legacyAddr)
	if err != nil {
		str := fmt.Sprintf("malformed legacy address %q: %v", legacyAddr, err)
		return "", makeError(ErrMalformedAddress, str)
	}
	if len(hash) != ripemd160.Size {
		str := fmt.Sprintf("legacy address %q carries a %d byte hash instead "+
			"of %d bytes", legacyAddr, len(hash), ripemd160.Size)
		return "", makeError(ErrMalformedAddress, str)
	}

	var addrType uint8
	switch version {
	case params.LegacyPubKeyHashAddrID():
		addrType = stdaddr.TypePubKeyHash
	case params.LegacyScriptHashAddrID():
		addrType = stdaddr.TypeScriptHash
	default:
		str := fmt.Sprintf("legacy address %q has unknown version byte %#02x",
			legacyAddr, version)
		return "", makeError(ErrUnknownVersion, str)
	}

	addr, err := cashaddr.Encode(params.AddrPrefix(), addrType, hash)
	if err != nil {
		return "", err
	}
	log.Tracef("Converted legacy address %s (version %#02x) to %s",
		legacyAddr, version, addr)
	return addr, nil
}

// FromCashAddr converts the provided cashaddr address for the network described
// by the params to its legacy encoding.
//
// The prefix may be omitted from the address, in which case the prefix of the
// network is assumed.
func FromCashAddr(addr string, params AddressParams) (string, error) {
	decoded, err := stdaddr.DecodeAddress(addr, params)
	switch {
	case errors.Is(err, stdaddr.ErrWrongNetwork):
		str := fmt.Sprintf("address %q is not for the network with prefix %q",
			addr, params.AddrPrefix())
		return "", makeError(ErrWrongNetwork, str)

	case errors.Is(err, stdaddr.ErrUnsupportedAddress):
		str := fmt.Sprintf("address %q has no legacy representation", addr)
		return "", makeError(ErrUnrepresentable, str)

	case err != nil:
		return "", err
	}

	var version byte
	switch decoded.(type) {
	case *stdaddr.AddressPubKeyHash:
		version = params.LegacyPubKeyHashAddrID()
	case *stdaddr.AddressScriptHash:
		version = params.LegacyScriptHashAddrID()
	default:
		str := fmt.Sprintf("address %q with a %d byte hash has no legacy "+
			"representation", addr, len(decoded.Hash()))
		return "", makeError(ErrUnrepresentable, str)
	}

	legacyAddr := base58.CheckEncode(decoded.Hash(), version)
	log.Tracef("Converted address %s to legacy address %s (version %#02x)",
		addr, legacyAddr, version)
	return legacyAddr, nil
}
