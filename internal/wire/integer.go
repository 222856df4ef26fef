// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "encoding/binary"

// EncodeInteger encodes v in the minimum width among {1, 2, 4} bytes
// that holds it, network byte order, per spec.md §4.1's integer codec.
// Used for NonNegativeInteger-typed sub-TLV values such as MetaInfo's
// ContentType; Round and SeqNum are NOT encoded with this helper, since
// spec.md §3 mandates their width is fixed (uint32 and uint8
// respectively), not minimal.
func EncodeInteger(v uint32) []byte {
	switch {
	case v <= 0xFF:
		return []byte{byte(v)}
	case v <= 0xFFFF:
		buf := make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(v))
		return buf
	default:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, v)
		return buf
	}
}

// DecodeInteger decodes a NonNegativeInteger of exactly len(buf) bytes
// (1, 2, or 4), network byte order.
func DecodeInteger(buf []byte) (uint32, error) {
	switch len(buf) {
	case 1:
		return uint32(buf[0]), nil
	case 2:
		return uint32(binary.BigEndian.Uint16(buf)), nil
	case 4:
		return binary.BigEndian.Uint32(buf), nil
	default:
		return 0, ErrBadLength
	}
}
