// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gozala/bcrypto/cashaddr"
	"github.com/Gozala/bcrypto/cashaddr/legacy"
	"github.com/Gozala/bcrypto/cashaddr/netparams"
	"github.com/Gozala/bcrypto/cashaddr/stdaddr"
	"github.com/decred/slog"
)

// errWrongArgCount is returned when a sub-command is given an unexpected number
// of inputs.
var errWrongArgCount = errors.New("wrong number of arguments")

// command carries the state shared by the sub-command implementations.
type command struct {
	params *netparams.Params
	out    io.Writer
	log    slog.Logger
}

// readInputs returns the positional arguments or, when there are none and in is
// not nil, the non-empty lines read from in.
func readInputs(args []string, in io.Reader) ([]string, error) {
	if len(args) != 0 || in == nil {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}

func (c *command) encode(addrType uint8, inputs []string) error {
	for _, in := range inputs {
		hash, err := decodeHex(in)
		if err != nil {
			return err
		}
		addr, err := cashaddr.Encode(c.params.AddrPrefix(), addrType, hash)
		if err != nil {
			return err
		}
		c.log.Debugf("Encoded %d byte hash with type %d as %s", len(hash),
			addrType, addr)
		fmt.Fprintln(c.out, addr)
	}
	return nil
}

func (c *command) decode(inputs []string) error {
	for _, in := range inputs {
		prefix, addrType, hash, err := cashaddr.Decode(in, c.params.AddrPrefix())
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s %d %x\n", prefix, addrType, hash)
	}
	return nil
}

func (c *command) serialize(inputs []string) error {
	for _, in := range inputs {
		data, err := decodeHex(in)
		if err != nil {
			return err
		}
		addr, err := cashaddr.Serialize(c.params.AddrPrefix(), data)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, addr)
	}
	return nil
}

func (c *command) deserialize(inputs []string) error {
	for _, in := range inputs {
		prefix, data, err := cashaddr.Deserialize(in, c.params.AddrPrefix())
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s %x\n", prefix, data)
	}
	return nil
}

func (c *command) validate(inputs []string) error {
	for _, in := range inputs {
		valid := cashaddr.Is(in, c.params.AddrPrefix())
		if !valid {
			c.log.Debugf("Address %q is not valid", in)
		}
		fmt.Fprintf(c.out, "%s %t\n", in, valid)
	}
	return nil
}

func (c *command) convertBits(reverse bool, inputs []string) error {
	fromBits, toBits, pad := uint8(8), uint8(5), true
	if reverse {
		fromBits, toBits, pad = 5, 8, false
	}
	for _, in := range inputs {
		data, err := decodeHex(in)
		if err != nil {
			return err
		}
		converted, err := cashaddr.ConvertBits(data, fromBits, toBits, pad)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%x\n", converted)
	}
	return nil
}

func (c *command) toCashAddr(inputs []string) error {
	for _, in := range inputs {
		addr, err := legacy.ToCashAddr(in, c.params)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, addr)
	}
	return nil
}

func (c *command) toLegacy(inputs []string) error {
	for _, in := range inputs {
		addr, err := legacy.FromCashAddr(in, c.params)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, addr)
	}
	return nil
}

func (c *command) compare(inputs []string) error {
	if len(inputs) != 2 {
		return fmt.Errorf("%w: compare requires 2 addresses, got %d",
			errWrongArgCount, len(inputs))
	}
	a, err := stdaddr.DecodeAddress(inputs[0], c.params)
	if err != nil {
		return err
	}
	b, err := stdaddr.DecodeAddress(inputs[1], c.params)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, stdaddr.Equal(a, b))
	return nil
}
