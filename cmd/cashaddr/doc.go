// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Cashaddr encodes, decodes and converts cashaddr addresses from the command
line.

Each sub-command operates on the inputs given as arguments.  When no inputs are
given and standard input is not a terminal, every non-empty line of standard
input is used instead.

Usage:

	cashaddr [global options] <sub-command> [options] [inputs...]

Global options:

	--net=         network whose prefix and legacy version bytes are used
	               {mainnet, testnet3, regtest} (default: mainnet)
	-p, --prefix=  override the cashaddr prefix of the network
	--logfile=     also write log output to the provided file
	-d, --debuglevel= logging level {trace, debug, info, warn, error,
	               critical, off} (default: info)

Sub-commands:

	encode       encode hex hashes as addresses (-t, --type= address type)
	decode       print the prefix, type and hash of addresses
	serialize    serialize hex payloads without a version byte
	deserialize  print the prefix and payload of addresses
	validate     print whether each address is valid
	convertbits  regroup hex bytes into 5-bit groups (-r, --reverse)
	tocashaddr   convert legacy base58check addresses to cashaddr
	tolegacy     convert cashaddr addresses to legacy base58check
	compare      print whether two addresses are the same
*/
package main
