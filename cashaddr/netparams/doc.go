// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package netparams defines the address parameters of the networks that use
cashaddr addresses.

Each network is identified by the prefix of its cashaddr addresses along with
the version bytes of its legacy base58check addresses.  The parameters are
returned by functions rather than exposed as globals so callers are free to
modify the returned instances:

	params := netparams.MainNetParams()
	fmt.Println(params.CashAddrPrefix) // bitcoincash

The parameters implement the AddressParams interfaces of the stdaddr and legacy
packages.
*/
package netparams
