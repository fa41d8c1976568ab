// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/Gozala/bcrypto/cashaddr/netparams"
	flags "github.com/jessevdk/go-flags"
)

const (
	encodeSubCmd      = "encode"
	decodeSubCmd      = "decode"
	serializeSubCmd   = "serialize"
	deserializeSubCmd = "deserialize"
	validateSubCmd    = "validate"
	convertBitsSubCmd = "convertbits"
	toCashAddrSubCmd  = "tocashaddr"
	toLegacySubCmd    = "tolegacy"
	compareSubCmd     = "compare"
)

// config defines the options shared by every sub-command.  go-flags resolves
// them both before and after the sub-command name.
type config struct {
	Net        string `long:"net" default:"mainnet" choice:"mainnet" choice:"testnet3" choice:"regtest" description:"network whose prefix and legacy version bytes are used"`
	Prefix     string `short:"p" long:"prefix" description:"override the cashaddr prefix of the network"`
	LogFile    string `long:"logfile" description:"also write log output to the provided file, rotated at 10 MiB"`
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"logging level {trace, debug, info, warn, error, critical, off}"`
}

type encodeConfig struct {
	Type uint8 `short:"t" long:"type" default:"0" description:"address type in the range 0-15 (0 = pay-to-pubkey-hash, 1 = pay-to-script-hash)"`
}

type convertBitsConfig struct {
	Reverse bool `short:"r" long:"reverse" description:"convert 5-bit groups back to bytes instead of bytes to 5-bit groups"`
}

type emptyConfig struct{}

// commandLine is the result of parsing the arguments of a single invocation.
type commandLine struct {
	cfg        config
	encode     encodeConfig
	convert    convertBitsConfig
	subCommand string
	args       []string
}

// parseCommandLine parses the provided arguments, without the program name,
// into the global options, the active sub-command and its positional
// arguments.  Errors from go-flags, including the request for help, are
// returned as *flags.Error.
func parseCommandLine(args []string) (*commandLine, error) {
	cl := &commandLine{}
	parser := flags.NewParser(&cl.cfg, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short, long string
		data              any
	}{
		{encodeSubCmd, "Encode hashes as cashaddr addresses",
			"Encodes each hex encoded hash as an address of the network " +
				"with the address type given by --type", &cl.encode},
		{decodeSubCmd, "Decode cashaddr addresses",
			"Decodes each address and prints its prefix, type and hex " +
				"encoded hash", &emptyConfig{}},
		{serializeSubCmd, "Serialize raw payloads",
			"Serializes each hex encoded payload under the network prefix " +
				"without interpreting it as a version byte and hash",
			&emptyConfig{}},
		{deserializeSubCmd, "Deserialize raw payloads",
			"Deserializes each address and prints its prefix and hex " +
				"encoded payload", &emptyConfig{}},
		{validateSubCmd, "Validate cashaddr addresses",
			"Prints each address followed by true when it decodes as a " +
				"valid address and false otherwise", &emptyConfig{}},
		{convertBitsSubCmd, "Regroup data between 8-bit and 5-bit groups",
			"Converts hex encoded bytes into hex encoded 5-bit groups, or " +
				"back with --reverse", &cl.convert},
		{toCashAddrSubCmd, "Convert legacy addresses to cashaddr",
			"Converts each base58check encoded legacy address of the " +
				"network to its cashaddr encoding", &emptyConfig{}},
		{toLegacySubCmd, "Convert cashaddr addresses to legacy",
			"Converts each cashaddr address of the network to its " +
				"base58check encoded legacy form", &emptyConfig{}},
		{compareSubCmd, "Compare two cashaddr addresses",
			"Prints true when both addresses decode to the same address " +
				"of the network and false otherwise", &emptyConfig{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, err
		}
	}

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	cl.subCommand = parser.Command.Active.Name
	cl.args = remaining

	if cl.subCommand == encodeSubCmd && cl.encode.Type > 15 {
		str := fmt.Sprintf("address type %d is greater than 15", cl.encode.Type)
		return nil, &flags.Error{Type: flags.ErrInvalidChoice, Message: str}
	}
	return cl, nil
}

// netParams returns the parameters of the configured network, with the
// cashaddr prefix replaced when one was provided.
func (cfg *config) netParams() (*netparams.Params, error) {
	params, ok := netparams.ParamsByName(cfg.Net)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", cfg.Net)
	}
	if cfg.Prefix != "" {
		p := *params
		p.CashAddrPrefix = cfg.Prefix
		params = &p
	}
	return params, nil
}
