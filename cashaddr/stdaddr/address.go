// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr provides typed pay-to-pubkey-hash and pay-to-script-hash
// addresses encoded with the cashaddr format.
package stdaddr

import (
	"fmt"
	"strings"

	"github.com/Gozala/bcrypto/cashaddr"
	"github.com/Gozala/bcrypto/consttime"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// These constants define the address types stored in the version byte of the
// standard address kinds.
const (
	// TypePubKeyHash is the address type of pay-to-pubkey-hash addresses.
	TypePubKeyHash uint8 = 0

	// TypeScriptHash is the address type of pay-to-script-hash addresses.
	TypeScriptHash uint8 = 1
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// AddrPrefix returns the cashaddr prefix of the network.
	AddrPrefix() string
}

// Address represents a cashaddr encoded payment destination.
type Address interface {
	// String returns the cashaddr encoding of the address including its
	// prefix.
	String() string

	// Prefix returns the lowercase network prefix of the address.
	Prefix() string

	// Type returns the address type stored in the version byte.
	Type() uint8

	// Hash returns the hash committed to by the address.
	Hash() []byte

	// IsForNet returns whether the address is associated with the network
	// described by the provided parameters.
	IsForNet(params AddressParams) bool
}

// Hash160er is an interface that allows the RIPEMD-160 hash to be obtained from
// addresses that involve them.
type Hash160er interface {
	Hash160() *[ripemd160.Size]byte
}

// encodeAddress returns the cashaddr encoding of the provided type and hash.
// The prefix and hash must already have been validated, so any errors are
// programming errors.
func encodeAddress(prefix string, addrType uint8, hash []byte) string {
	addr, err := cashaddr.Encode(prefix, addrType, hash)
	if err != nil {
		panic(fmt.Sprintf("encoding validated address failed: %v", err))
	}
	return addr
}

// checkPrefix ensures the prefix of the provided params is accepted by the
// codec and returns its lowercase form.
func checkPrefix(params AddressParams) (string, error) {
	return cashaddr.NormalizePrefix(params.AddrPrefix())
}

// isForNet returns whether the prefix matches the one of the provided params.
func isForNet(prefix string, params AddressParams) bool {
	return strings.EqualFold(prefix, params.AddrPrefix())
}

// AddressPubKeyHash specifies an address that represents a payment destination
// which imposes an encumbrance that requires a public key that hashes to the
// given RIPEMD-160 hash along with a valid signature for it.
type AddressPubKeyHash struct {
	prefix string
	hash   [ripemd160.Size]byte
}

// Ensure AddressPubKeyHash implements the Address and Hash160er interfaces.
var _ Address = (*AddressPubKeyHash)(nil)
var _ Hash160er = (*AddressPubKeyHash)(nil)

// NewAddressPubKeyHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a public key that
// hashes to the provided hash.
//
// The hash must be 20 bytes.
func NewAddressPubKeyHash(pkHash []byte, params AddressParams) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("public key hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashSize, str)
	}
	prefix, err := checkPrefix(params)
	if err != nil {
		return nil, err
	}

	addr := &AddressPubKeyHash{prefix: prefix}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// String returns the cashaddr encoding of the address.
//
// This is part of the Address interface.
func (addr *AddressPubKeyHash) String() string {
	return encodeAddress(addr.prefix, TypePubKeyHash, addr.hash[:])
}

// Prefix returns the network prefix of the address.
//
// This is part of the Address interface.
func (addr *AddressPubKeyHash) Prefix() string {
	return addr.prefix
}

// Type returns TypePubKeyHash.
//
// This is part of the Address interface.
func (addr *AddressPubKeyHash) Type() uint8 {
	return TypePubKeyHash
}

// Hash returns the public key hash.
//
// This is part of the Address interface.
func (addr *AddressPubKeyHash) Hash() []byte {
	return addr.hash[:]
}

// IsForNet returns whether the address is associated with the passed network.
//
// This is part of the Address interface.
func (addr *AddressPubKeyHash) IsForNet(params AddressParams) bool {
	return isForNet(addr.prefix, params)
}

// Hash160 returns the underlying array of the public key hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (addr *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// AddressScriptHash specifies an address that represents a payment destination
// which imposes an encumbrance that requires a script that hashes to the given
// RIPEMD-160 hash along with all of the encumbrances that script itself
// imposes.
type AddressScriptHash struct {
	prefix string
	hash   [ripemd160.Size]byte
}

// Ensure AddressScriptHash implements the Address and Hash160er interfaces.
var _ Address = (*AddressScriptHash)(nil)
var _ Hash160er = (*AddressScriptHash)(nil)

// NewAddressScriptHash returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided 20 byte hash.
func NewAddressScriptHash(scriptHash []byte, params AddressParams) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashSize, str)
	}
	prefix, err := checkPrefix(params)
	if err != nil {
		return nil, err
	}

	addr := &AddressScriptHash{prefix: prefix}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// String returns the cashaddr encoding of the address.
//
// This is part of the Address interface.
func (addr *AddressScriptHash) String() string {
	return encodeAddress(addr.prefix, TypeScriptHash, addr.hash[:])
}

// Prefix returns the network prefix of the address.
//
// This is part of the Address interface.
func (addr *AddressScriptHash) Prefix() string {
	return addr.prefix
}

// Type returns TypeScriptHash.
//
// This is part of the Address interface.
func (addr *AddressScriptHash) Type() uint8 {
	return TypeScriptHash
}

// Hash returns the script hash.
//
// This is part of the Address interface.
func (addr *AddressScriptHash) Hash() []byte {
	return addr.hash[:]
}

// IsForNet returns whether the address is associated with the passed network.
//
// This is part of the Address interface.
func (addr *AddressScriptHash) IsForNet(params AddressParams) bool {
	return isForNet(addr.prefix, params)
}

// Hash160 returns the underlying array of the script hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as map
// keys).
func (addr *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &addr.hash
}

// AddressScriptHash32 specifies a pay-to-script-hash address that commits to a
// 32 byte script hash.
type AddressScriptHash32 struct {
	prefix string
	hash   chainhash.Hash
}

// Ensure AddressScriptHash32 implements the Address interface.
var _ Address = (*AddressScriptHash32)(nil)

// NewAddressScriptHash32 returns an address that represents a payment
// destination which imposes an encumbrance that requires a script that hashes
// to the provided 32 byte hash.
func NewAddressScriptHash32(scriptHash []byte, params AddressParams) (*AddressScriptHash32, error) {
	if len(scriptHash) != chainhash.HashSize {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), chainhash.HashSize)
		return nil, makeError(ErrInvalidHashSize, str)
	}
	prefix, err := checkPrefix(params)
	if err != nil {
		return nil, err
	}

	addr := &AddressScriptHash32{prefix: prefix}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// String returns the cashaddr encoding of the address.
//
// This is part of the Address interface.
func (addr *AddressScriptHash32) String() string {
	return encodeAddress(addr.prefix, TypeScriptHash, addr.hash[:])
}

// Prefix returns the network prefix of the address.
//
// This is part of the Address interface.
func (addr *AddressScriptHash32) Prefix() string {
	return addr.prefix
}

// Type returns TypeScriptHash.
//
// This is part of the Address interface.
func (addr *AddressScriptHash32) Type() uint8 {
	return TypeScriptHash
}

// Hash returns the script hash.
//
// This is part of the Address interface.
func (addr *AddressScriptHash32) Hash() []byte {
	return addr.hash[:]
}

// IsForNet returns whether the address is associated with the passed network.
//
// This is part of the Address interface.
func (addr *AddressScriptHash32) IsForNet(params AddressParams) bool {
	return isForNet(addr.prefix, params)
}

// Hash32 returns the underlying script hash.
func (addr *AddressScriptHash32) Hash32() *chainhash.Hash {
	return &addr.hash
}

// DecodeAddress decodes the cashaddr encoding of an address for the network
// described by the provided parameters.
//
// The prefix may be omitted from the string, in which case the prefix of the
// network is assumed.  An address that carries the prefix of another network
// results in ErrWrongNetwork.  Errors from the codec are returned as is, so
// the cashaddr error kinds may be checked with errors.Is.
func DecodeAddress(addr string, params AddressParams) (Address, error) {
	prefix, addrType, hash, err := cashaddr.Decode(addr, params.AddrPrefix())
	if err != nil {
		return nil, err
	}
	if !isForNet(prefix, params) {
		str := fmt.Sprintf("address %q is for prefix %q instead of %q", addr,
			prefix, strings.ToLower(params.AddrPrefix()))
		return nil, makeError(ErrWrongNetwork, str)
	}

	switch {
	case addrType == TypePubKeyHash && len(hash) == ripemd160.Size:
		return NewAddressPubKeyHash(hash, params)

	case addrType == TypeScriptHash && len(hash) == ripemd160.Size:
		return NewAddressScriptHash(hash, params)

	case addrType == TypeScriptHash && len(hash) == chainhash.HashSize:
		return NewAddressScriptHash32(hash, params)
	}

	str := fmt.Sprintf("address %q with type %d and a %d byte hash is not a "+
		"supported address", addr, addrType, len(hash))
	return nil, makeError(ErrUnsupportedAddress, str)
}

// Equal returns whether the two addresses commit to the same hash with the same
// type and prefix.  The hashes are compared in constant time.
func Equal(a, b Address) bool {
	return a.Prefix() == b.Prefix() && a.Type() == b.Type() &&
		consttime.Equal(a.Hash(), b.Hash())
}
