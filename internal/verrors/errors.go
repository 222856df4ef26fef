// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verrors declares the protocol-level error taxonomy from
// spec.md §7: bad_format, no_space, ok. It's a separate leaf package
// (rather than living in internal/protocol) so internal/apprt and
// internal/fetch can return these sentinels too without an import cycle
// back into internal/protocol.
package verrors

import "errors"

var (
	// ErrBadFormat: TLV parse failure, wrong component count/size, or an
	// unknown peer prefix. The event is dropped; state is left untouched.
	ErrBadFormat = errors.New("vsync: bad format")

	// ErrNoSpace: a downstream interest send failed, or memory/allocation
	// failed. State may be partially advanced — whatever preceded the
	// failing send is retained, per spec.md §7.
	ErrNoSpace = errors.New("vsync: no space")
)
