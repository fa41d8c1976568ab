// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// RegNetParams returns the address parameters for the regression test
// network.
func RegNetParams() *Params {
	return &Params{
		Name:             "regtest",
		CashAddrPrefix:   "bchreg",
		PubKeyHashAddrID: 0x6f, // starts with m or n
		ScriptHashAddrID: 0xc4, // starts with 2
	}
}
