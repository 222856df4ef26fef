// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package apprt names the boundary spec.md §1 and §9 describe but place
// out of scope: "the NDN application runtime: event loop, scheduled
// callbacks, interest/data dispatch by registered prefix, interest-
// timeout delivery, and an outgoing-interest API." The core engine
// (internal/protocol, internal/fetch) only ever talks to the Runtime
// interface below; concrete implementations (internal/apprt/memrt for
// tests and the single-process demo) live outside this package.
package apprt

import (
	"time"
)

// DataCallback is invoked when data matching an expressed interest
// arrives. data is the full encoded Data TLV.
type DataCallback func(data []byte)

// TimeoutCallback is invoked when no data arrives before an expressed
// interest's lifetime elapses.
type TimeoutCallback func()

// InterestCallback is invoked when an interest matching a registered
// prefix arrives. interest is the full encoded Interest TLV.
type InterestCallback func(interest []byte)

// Runtime is the event loop / dispatch collaborator the protocol state
// machine and fetch orchestrator are built against. It is deliberately
// minimal: everything the engine needs from the host app runtime and
// nothing else, mirroring the original source's ndn_app_* call shape
// (ndn_app_register_prefix, ndn_app_express_interest, ndn_app_put_data,
// ndn_app_schedule).
type Runtime interface {
	// RegisterPrefix installs onInterest as the handler for all
	// interests matching prefix. Only one handler may be registered per
	// prefix; registering a second handler for the same prefix replaces
	// the first (the engine only ever registers each of its two
	// prefixes — sync and own-data — once, at startup).
	RegisterPrefix(prefix []byte, onInterest InterestCallback) error

	// ExpressInterest sends name, a full encoded Interest TLV (see
	// wire.WrapInterest), with the given lifetime. onData fires at most
	// once if matching data arrives; onTimeout fires at most once if
	// lifetime elapses with no match. Exactly one of the two fires for a
	// given call (never both, never neither, modulo the runtime itself
	// shutting down). Returns a non-nil error if the interest could not
	// be sent (verrors.ErrBadFormat for a malformed Interest TLV).
	ExpressInterest(name []byte, lifetime time.Duration, onData DataCallback, onTimeout TimeoutCallback) error

	// PutData satisfies an interest for data with the given encoded Data
	// TLV. Returns a non-nil error on failure (verrors.ErrBadFormat for a
	// malformed Data TLV).
	PutData(data []byte) error

	// Schedule invokes fn once, after delay. Used by the publish loop to
	// re-arm itself (original source's ndn_app_schedule).
	Schedule(delay time.Duration, fn func()) error
}
