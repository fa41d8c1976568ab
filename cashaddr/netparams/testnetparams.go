// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

// TestNet3Params returns the address parameters for the test network
// (version 3).
func TestNet3Params() *Params {
	return &Params{
		Name:             "testnet3",
		CashAddrPrefix:   "bchtest",
		PubKeyHashAddrID: 0x6f, // starts with m or n
		ScriptHashAddrID: 0xc4, // starts with 2
	}
}
