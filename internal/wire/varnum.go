// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "encoding/binary"

// EncodeVarNum encodes n as an NDN TLV VAR-NUMBER: one byte for values <=
// 252; a leading byte 253 followed by 2 big-endian bytes for values <=
// 0xFFFF; a leading byte 254 followed by 4 big-endian bytes for values <=
// 0xFFFF_FFFF. Larger values are not supported by this adapter (spec.md
// §4.1 only specifies these three widths): they are written in the
// 5-byte form with only their low 32 bits kept.
func EncodeVarNum(n uint64) []byte {
	switch {
	case n <= 252:
		return []byte{byte(n)}
	case n <= 0xFFFF:
		buf := make([]byte, 3)
		buf[0] = 253
		binary.BigEndian.PutUint16(buf[1:], uint16(n))
		return buf
	case n <= 0xFFFFFFFF:
		buf := make([]byte, 5)
		buf[0] = 254
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return buf
	default:
		// Values beyond 32 bits never occur in this protocol (round
		// numbers are uint32, lengths fit in a uint32); fall back to
		// the widest form this adapter understands, keeping only the
		// low 32 bits.
		buf := make([]byte, 5)
		buf[0] = 254
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return buf
	}
}

// DecodeVarNum reads a VAR-NUMBER from the start of buf, returning its
// value and the number of bytes consumed.
func DecodeVarNum(buf []byte) (value uint64, consumed int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrTruncated
	}
	lead := buf[0]
	switch {
	case lead <= 252:
		return uint64(lead), 1, nil
	case lead == 253:
		if len(buf) < 3 {
			return 0, 0, ErrTruncated
		}
		return uint64(binary.BigEndian.Uint16(buf[1:3])), 3, nil
	case lead == 254:
		if len(buf) < 5 {
			return 0, 0, ErrTruncated
		}
		return uint64(binary.BigEndian.Uint32(buf[1:5])), 5, nil
	default: // 255
		return 0, 0, ErrVarNumTooLarge
	}
}
