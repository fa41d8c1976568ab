// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package legacy

import "github.com/decred/slog"

// log is the logger conversions are traced on.  The package does not log
// anything until the caller provides a logger with UseLogger.
var log = slog.Disabled

// UseLogger sets the logger used to trace address conversions.
func UseLogger(logger slog.Logger) {
	log = logger
}
