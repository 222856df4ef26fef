// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

// Type codes fixed by the NDN TLV specification (spec.md §4.1). These
// must be honored bit-exactly; they are not VectorSync's to choose.
const (
	TypeInterest       uint64 = 0x05
	TypeData           uint64 = 0x06
	TypeName           uint64 = 0x07
	TypeNameComponent  uint64 = 0x08
	TypeMetaInfo       uint64 = 0x14
	TypeContent        uint64 = 0x15
	TypeSignatureInfo  uint64 = 0x16
	TypeSignatureValue uint64 = 0x17

	// TypeSignatureType is the standard NDN sub-TLV carrying the
	// SignatureInfo's signature-kind code. spec.md §4.1 doesn't enumerate
	// it explicitly among the "must honor bit-exactly" set, but it's
	// required to assemble a conformant SignatureInfo block.
	TypeSignatureType uint64 = 0x1b

	// Sub-TLVs of MetaInfo. Not called out individually by spec.md, but
	// needed to carry the ndn_metainfo_t{content_type, freshness_period}
	// the original source passes to ndn_data_create.
	TypeContentType     uint64 = 0x18
	TypeFreshnessPeriod uint64 = 0x19
)

// EncodeBlock wraps value in a TLV: type varnum, length varnum, value.
func EncodeBlock(typ uint64, value []byte) []byte {
	t := EncodeVarNum(typ)
	l := EncodeVarNum(uint64(len(value)))
	out := make([]byte, 0, len(t)+len(l)+len(value))
	out = append(out, t...)
	out = append(out, l...)
	out = append(out, value...)
	return out
}

// block is a decoded TLV: its type, its value slice (a view into the
// original buffer, not copied), and how many bytes of the original buffer
// it consumed.
type block struct {
	typ      uint64
	value    []byte
	consumed int
}

// decodeBlock decodes a single TLV from the start of buf.
func decodeBlock(buf []byte) (block, error) {
	typ, tn, err := DecodeVarNum(buf)
	if err != nil {
		return block{}, err
	}
	length, ln, err := DecodeVarNum(buf[tn:])
	if err != nil {
		return block{}, err
	}
	start := tn + ln
	end := start + int(length)
	if end > len(buf) {
		return block{}, ErrTruncated
	}
	return block{typ: typ, value: buf[start:end], consumed: end}, nil
}

// decodeTyped decodes a single TLV from the start of buf and requires its
// type equal want.
func decodeTyped(buf []byte, want uint64) (block, error) {
	b, err := decodeBlock(buf)
	if err != nil {
		return block{}, err
	}
	if b.typ != want {
		return block{}, ErrUnexpectedType
	}
	return b, nil
}

// iterBlocks walks sequential, back-to-back TLVs packed into buf (e.g.
// the sub-TLVs inside a Name or a Data's value), calling fn with each
// decoded block. Iteration stops at the first error fn returns (io.EOF is
// not special-cased: fn returning nil for every block consumes all of
// buf).
func iterBlocks(buf []byte, fn func(b block) error) error {
	off := 0
	for off < len(buf) {
		b, err := decodeBlock(buf[off:])
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		off += b.consumed
	}
	return nil
}
