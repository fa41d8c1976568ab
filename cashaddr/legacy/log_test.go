// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package legacy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Gozala/bcrypto/cashaddr/netparams"
	"github.com/decred/slog"
)

func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	testLogger := slog.NewBackend(&buf).Logger("TEST")
	testLogger.SetLevel(slog.LevelTrace)
	UseLogger(testLogger)
	defer UseLogger(slog.Disabled)

	if log != testLogger {
		t.Errorf("Expected log to be set to testLogger, got %v", log)
	}

	_, err := ToCashAddr("1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu",
		netparams.MainNetParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a") {
		t.Fatalf("conversion was not logged: %q", buf.String())
	}
}
