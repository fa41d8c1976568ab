// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import "strings"

// Params defines the address related parameters of a network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// CashAddrPrefix is the prefix of cashaddr encoded addresses for the
	// network.
	CashAddrPrefix string

	// PubKeyHashAddrID is the version byte of legacy base58check encoded
	// pay-to-pubkey-hash addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the version byte of legacy base58check encoded
	// pay-to-script-hash addresses.
	ScriptHashAddrID byte
}

// AddrPrefix returns the cashaddr prefix for the network.
//
// This is part of the stdaddr.AddressParams interface.
func (p *Params) AddrPrefix() string {
	return p.CashAddrPrefix
}

// LegacyPubKeyHashAddrID returns the version byte of legacy pay-to-pubkey-hash
// addresses for the network.
//
// This is part of the legacy.AddressParams interface.
func (p *Params) LegacyPubKeyHashAddrID() byte {
	return p.PubKeyHashAddrID
}

// LegacyScriptHashAddrID returns the version byte of legacy pay-to-script-hash
// addresses for the network.
//
// This is part of the legacy.AddressParams interface.
func (p *Params) LegacyScriptHashAddrID() byte {
	return p.ScriptHashAddrID
}

// allParams returns the parameters of every known network.
func allParams() []*Params {
	return []*Params{MainNetParams(), TestNet3Params(), RegNetParams()}
}

// ParamsByName returns the parameters for the network with the provided name,
// if it is known.
func ParamsByName(name string) (*Params, bool) {
	for _, params := range allParams() {
		if params.Name == name {
			return params, true
		}
	}
	return nil, false
}

// ParamsByPrefix returns the parameters for the network that uses the
// provided cashaddr prefix, if it is known.  The comparison is case
// insensitive.
func ParamsByPrefix(prefix string) (*Params, bool) {
	for _, params := range allParams() {
		if strings.EqualFold(params.CashAddrPrefix, prefix) {
			return params, true
		}
	}
	return nil, false
}
