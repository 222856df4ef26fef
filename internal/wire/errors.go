// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "errors"

// Sentinel errors for the wire codec adapter. Higher layers (internal/protocol)
// translate these into the protocol-level bad_format/no_space taxonomy from
// spec.md §7 via errors.Is.
var (
	// ErrTruncated is returned whenever a TLV value or varnum is shorter
	// than its declared or required length.
	ErrTruncated = errors.New("wire: truncated input")

	// ErrUnexpectedType is returned when a TLV block's type does not
	// match what the caller expected (e.g. parsing a Data block but
	// finding an Interest block).
	ErrUnexpectedType = errors.New("wire: unexpected TLV type")

	// ErrBadLength is returned by DecodeInteger when the input is not 1,
	// 2 or 4 bytes long, and by BuildData when HMAC signing is requested
	// with an empty key.
	ErrBadLength = errors.New("wire: bad field length")

	// ErrComponentOutOfRange is returned by ComponentAt when the index
	// (positive or negative) has no corresponding component.
	ErrComponentOutOfRange = errors.New("wire: name component index out of range")

	// ErrVarNumTooLarge is returned by DecodeVarNum when the leading byte
	// requests a width (8 bytes / marker 255) this adapter doesn't
	// support, per spec.md §4.1's 1/3/5-byte forms only.
	ErrVarNumTooLarge = errors.New("wire: varnum width not supported")
)
