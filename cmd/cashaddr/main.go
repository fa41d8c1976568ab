// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// run executes the sub-command described by args.  Inputs are taken from the
// positional arguments or, when there are none, from the lines of in.  Results
// are written to out and log output to errOut.
func run(args []string, in io.Reader, out, errOut io.Writer) error {
	cl, err := parseCommandLine(args)
	if err != nil {
		return err
	}
	params, err := cl.cfg.netParams()
	if err != nil {
		return err
	}
	logs, err := initLogging(errOut, cl.cfg.LogFile, cl.cfg.DebugLevel)
	if err != nil {
		return err
	}
	defer logs.close()

	inputs, err := readInputs(cl.args, in)
	if err != nil {
		return err
	}
	logs.log.Debugf("Running %s on %d inputs for network %s (prefix %q)",
		cl.subCommand, len(inputs), params.Name, params.AddrPrefix())

	c := &command{params: params, out: out, log: logs.log}
	switch cl.subCommand {
	case encodeSubCmd:
		err = c.encode(cl.encode.Type, inputs)
	case decodeSubCmd:
		err = c.decode(inputs)
	case serializeSubCmd:
		err = c.serialize(inputs)
	case deserializeSubCmd:
		err = c.deserialize(inputs)
	case validateSubCmd:
		err = c.validate(inputs)
	case convertBitsSubCmd:
		err = c.convertBits(cl.convert.Reverse, inputs)
	case toCashAddrSubCmd:
		err = c.toCashAddr(inputs)
	case toLegacySubCmd:
		err = c.toLegacy(inputs)
	case compareSubCmd:
		err = c.compare(inputs)
	default:
		err = fmt.Errorf("unknown sub-command %q", cl.subCommand)
	}
	if err != nil {
		logs.log.Debugf("%s failed: %v", cl.subCommand, err)
	}
	return err
}

func main() {
	var in io.Reader
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		in = os.Stdin
	}

	err := run(os.Args[1:], in, os.Stdout, os.Stderr)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, e.Message)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
