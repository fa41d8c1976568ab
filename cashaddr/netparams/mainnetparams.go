// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// MainNetParams returns the address parameters for the main network.
func MainNetParams() *Params {
	return &Params{
		Name:             "mainnet",
		CashAddrPrefix:   "bitcoincash",
		PubKeyHashAddrID: 0x00, // starts with 1
		ScriptHashAddrID: 0x05, // starts with 3
	}
}
