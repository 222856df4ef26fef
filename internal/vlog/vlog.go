// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vlog centralizes the logging surface used by the VectorSync
// engine so every package takes a log.Logger rather than reaching for a
// package-level global.
package vlog

import (
	"github.com/luxfi/log"
)

// Logger is re-exported so callers outside this package don't need to
// import github.com/luxfi/log directly just to accept one.
type Logger = log.Logger

// New returns the engine's default logger, named so multi-node demos can
// tell instances apart in a shared log stream.
func New(name string) Logger {
	return log.NewLogger(name)
}

// NoOp returns a logger that discards everything, for tests.
func NoOp() Logger {
	return log.NewNoOpLogger()
}
