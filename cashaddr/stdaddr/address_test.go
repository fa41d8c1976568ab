// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/Gozala/bcrypto/cashaddr"
	"github.com/Gozala/bcrypto/cashaddr/netparams"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// mockAddrParams implements the AddressParams interface and is used throughout
// the tests to mock networks with arbitrary prefixes.
type mockAddrParams struct {
	prefix string
}

// AddrPrefix returns the prefix associated with the mock params.
//
// This is part of the AddressParams interface.
func (p *mockAddrParams) AddrPrefix() string {
	return p.prefix
}

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected. It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestAddresses ensures creating, encoding, and decoding the supported address
// types works as expected.
func TestAddresses(t *testing.T) {
	mainNet := netparams.MainNetParams()
	testNet := netparams.TestNet3Params()

	tests := []struct {
		name     string
		makeAddr func() (Address, error)
		params   AddressParams
		addrType uint8
		hash     string
		want     string
	}{{
		name: "mainnet p2pkh",
		makeAddr: func() (Address, error) {
			hash := hexToBytes("f5bf48b397dae70be82b3cca4793f8eb2b6cdac9")
			return NewAddressPubKeyHash(hash, mainNet)
		},
		params:   mainNet,
		addrType: TypePubKeyHash,
		hash:     "f5bf48b397dae70be82b3cca4793f8eb2b6cdac9",
		want:     "bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg2",
	}, {
		name: "testnet p2sh",
		makeAddr: func() (Address, error) {
			hash := hexToBytes("f5bf48b397dae70be82b3cca4793f8eb2b6cdac9")
			return NewAddressScriptHash(hash, testNet)
		},
		params:   testNet,
		addrType: TypeScriptHash,
		hash:     "f5bf48b397dae70be82b3cca4793f8eb2b6cdac9",
		want:     "bchtest:pr6m7j9njldwwzlg9v7v53unlr4jkmx6eyvwc0uz5t",
	}, {
		name: "testnet p2sh32",
		makeAddr: func() (Address, error) {
			hash := hexToBytes("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
			return NewAddressScriptHash32(hash, testNet)
		},
		params:   testNet,
		addrType: TypeScriptHash,
		hash:     "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		want:     "bchtest:pvqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcur50p75dfqqc8x",
	}, {
		name: "uppercase mock prefix",
		makeAddr: func() (Address, error) {
			hash := hexToBytes("f5bf48b397dae70be82b3cca4793f8eb2b6cdac9")
			return NewAddressScriptHash(hash, &mockAddrParams{"PREF"})
		},
		params:   &mockAddrParams{"PREF"},
		addrType: TypeScriptHash,
		hash:     "f5bf48b397dae70be82b3cca4793f8eb2b6cdac9",
		want:     "pref:pr6m7j9njldwwzlg9v7v53unlr4jkmx6ey65nvtks5",
	}}

	for _, test := range tests {
		addr, err := test.makeAddr()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got := addr.String(); got != test.want {
			t.Errorf("%s: mismatched address -- got %s, want %s", test.name,
				got, test.want)
			continue
		}
		if addr.Type() != test.addrType {
			t.Errorf("%s: mismatched type -- got %d, want %d", test.name,
				addr.Type(), test.addrType)
			continue
		}
		if !bytes.Equal(addr.Hash(), hexToBytes(test.hash)) {
			t.Errorf("%s: mismatched hash -- got %x, want %s", test.name,
				addr.Hash(), test.hash)
			continue
		}
		if !addr.IsForNet(test.params) {
			t.Errorf("%s: address is not for its own network", test.name)
			continue
		}

		// Ensure decoding the encoded address with and without its prefix
		// produces an equal address of the same concrete type.
		prefixLen := len(addr.Prefix()) + 1
		for _, s := range []string{test.want, test.want[prefixLen:]} {
			decoded, err := DecodeAddress(s, test.params)
			if err != nil {
				t.Errorf("%s: unexpected decode error for %s: %v", test.name,
					s, err)
				continue
			}
			if !Equal(decoded, addr) {
				t.Errorf("%s: decoded address mismatch: %s", test.name,
					spew.Sdump(decoded))
				continue
			}
			if _, ok := decoded.(Hash160er); ok != (len(addr.Hash()) == ripemd160.Size) {
				t.Errorf("%s: unexpected Hash160er implementation", test.name)
				continue
			}
		}
	}
}

// TestNewAddressErrors ensures creating addresses with invalid hashes or
// prefixes fails with the expected errors.
func TestNewAddressErrors(t *testing.T) {
	mainNet := netparams.MainNetParams()
	hash20 := make([]byte, ripemd160.Size)
	hash32 := make([]byte, 32)

	tests := []struct {
		name     string
		makeAddr func() (Address, error)
		err      error
	}{{
		name: "p2pkh with 32 byte hash",
		makeAddr: func() (Address, error) {
			return NewAddressPubKeyHash(hash32, mainNet)
		},
		err: ErrInvalidHashSize,
	}, {
		name: "p2sh with 32 byte hash",
		makeAddr: func() (Address, error) {
			return NewAddressScriptHash(hash32, mainNet)
		},
		err: ErrInvalidHashSize,
	}, {
		name: "p2sh32 with 20 byte hash",
		makeAddr: func() (Address, error) {
			return NewAddressScriptHash32(hash20, mainNet)
		},
		err: ErrInvalidHashSize,
	}, {
		name: "empty prefix",
		makeAddr: func() (Address, error) {
			return NewAddressPubKeyHash(hash20, &mockAddrParams{""})
		},
		err: cashaddr.ErrInvalidPrefix,
	}, {
		name: "mixed case prefix",
		makeAddr: func() (Address, error) {
			return NewAddressScriptHash(hash20, &mockAddrParams{"BchTest"})
		},
		err: cashaddr.ErrInvalidPrefix,
	}}

	for _, test := range tests {
		_, err := test.makeAddr()
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
	}
}

// TestDecodeAddressErrors ensures decoding addresses that are malformed,
// unsupported, or for another network fails with the expected errors.
func TestDecodeAddressErrors(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		params AddressParams
		err    error
	}{{
		name:   "testnet address on mainnet",
		addr:   "bchtest:pr6m7j9njldwwzlg9v7v53unlr4jkmx6eyvwc0uz5t",
		params: netparams.MainNetParams(),
		err:    ErrWrongNetwork,
	}, {
		name:   "testnet address without prefix on mainnet",
		addr:   "pr6m7j9njldwwzlg9v7v53unlr4jkmx6eyvwc0uz5t",
		params: netparams.MainNetParams(),
		err:    cashaddr.ErrChecksumMismatch,
	}, {
		name:   "p2pkh with 32 byte hash",
		addr:   "bitcoincash:qvqqzqsrqszsvpcgpy9qkrqdpc83qygjzv2p29shrqv35xcur50p77hk2ql29",
		params: netparams.MainNetParams(),
		err:    ErrUnsupportedAddress,
	}, {
		name:   "unknown type",
		addr:   "prefix:0r6m7j9njldwwzlg9v7v53unlr4jkmx6ey3qnjwsrf",
		params: &mockAddrParams{"prefix"},
		err:    ErrUnsupportedAddress,
	}, {
		name:   "bad checksum",
		addr:   "bitcoincash:qr6m7j9njldwwzlg9v7v53unlr4jkmx6eylep8ekg3",
		params: netparams.MainNetParams(),
		err:    cashaddr.ErrChecksumMismatch,
	}}

	for _, test := range tests {
		_, err := DecodeAddress(test.addr, test.params)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
	}
}

// TestEqual ensures addresses only compare equal when their prefix, type, and
// hash all match.
func TestEqual(t *testing.T) {
	mainNet := netparams.MainNetParams()
	testNet := netparams.TestNet3Params()
	hash := hexToBytes("f5bf48b397dae70be82b3cca4793f8eb2b6cdac9")
	otherHash := hexToBytes("f5bf48b397dae70be82b3cca4793f8eb2b6cdac8")

	pkh, _ := NewAddressPubKeyHash(hash, mainNet)
	pkhCopy, _ := NewAddressPubKeyHash(hash, mainNet)
	pkhTestNet, _ := NewAddressPubKeyHash(hash, testNet)
	pkhOther, _ := NewAddressPubKeyHash(otherHash, mainNet)
	sh, _ := NewAddressScriptHash(hash, mainNet)

	tests := []struct {
		name string
		a, b Address
		want bool
	}{
		{"same", pkh, pkh, true},
		{"copy", pkh, pkhCopy, true},
		{"different network", pkh, pkhTestNet, false},
		{"different hash", pkh, pkhOther, false},
		{"different type", pkh, sh, false},
	}

	for _, test := range tests {
		if got := Equal(test.a, test.b); got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}
