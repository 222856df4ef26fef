// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"encoding/binary"
	"strings"
)

// Name is an encoded NDN Name TLV block (type 0x07).
type Name []byte

// NameBuilder accumulates NameComponents before encoding them into a Name
// TLV. The zero value is not usable; use NewName.
type NameBuilder struct {
	comps [][]byte
}

// NewName starts an empty name.
func NewName() *NameBuilder {
	return &NameBuilder{}
}

// FromURI parses a "/a/b/c"-style URI into a NameBuilder. Components are
// taken as raw bytes of each "/"-delimited segment; VectorSync's prefixes
// are plain ASCII identifiers ("alice", "bob", "vsync"), so no
// percent-decoding is performed.
func FromURI(uri string) *NameBuilder {
	nb := NewName()
	for _, seg := range strings.Split(uri, "/") {
		if seg == "" {
			continue
		}
		nb.AppendBytes([]byte(seg))
	}
	return nb
}

// FromName starts a NameBuilder pre-loaded with an existing encoded
// Name's components, so callers can extend a cached prefix (e.g. a
// roster entry) with further components without re-parsing a URI. This
// mirrors the original source's ndn_name_append_uint32(pfx, rn), which
// extends an already-encoded prefix block.
func FromName(n Name) (*NameBuilder, error) {
	count, err := NumComponents(n)
	if err != nil {
		return nil, err
	}
	nb := NewName()
	for i := 0; i < count; i++ {
		c, err := ComponentAt(n, i)
		if err != nil {
			return nil, err
		}
		nb.AppendBytes(c)
	}
	return nb, nil
}

// AppendBytes appends an arbitrary byte blob as a new component.
func (nb *NameBuilder) AppendBytes(b []byte) *NameBuilder {
	cp := make([]byte, len(b))
	copy(cp, b)
	nb.comps = append(nb.comps, cp)
	return nb
}

// AppendUint32 appends a big-endian uint32 as a new component. Used for
// the Round field in both sync-interest and data names (spec.md §3
// mandates network byte order for Round, bit-exactly).
func (nb *NameBuilder) AppendUint32(v uint32) *NameBuilder {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	nb.comps = append(nb.comps, buf)
	return nb
}

// AppendUint8 appends a single-byte component. Used for the SeqNum field
// in data names.
func (nb *NameBuilder) AppendUint8(v uint8) *NameBuilder {
	nb.comps = append(nb.comps, []byte{v})
	return nb
}

// Encode produces the final Name TLV bytes.
func (nb *NameBuilder) Encode() Name {
	var value []byte
	for _, c := range nb.comps {
		value = append(value, EncodeBlock(TypeNameComponent, c)...)
	}
	return EncodeBlock(TypeName, value)
}

// NumComponents returns the number of NameComponents in an encoded Name
// block.
func NumComponents(name []byte) (int, error) {
	n, err := decodeTyped(name, TypeName)
	if err != nil {
		return 0, err
	}
	count := 0
	err = iterBlocks(n.value, func(b block) error {
		if b.typ != TypeNameComponent {
			return ErrUnexpectedType
		}
		count++
		return nil
	})
	return count, err
}

// ComponentAt returns a view of the i-th NameComponent's value (without
// copying). Negative i counts from the end (-1 is the last component).
func ComponentAt(name []byte, i int) ([]byte, error) {
	n, err := decodeTyped(name, TypeName)
	if err != nil {
		return nil, err
	}

	var comps [][]byte
	err = iterBlocks(n.value, func(b block) error {
		if b.typ != TypeNameComponent {
			return ErrUnexpectedType
		}
		comps = append(comps, b.value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	idx := i
	if idx < 0 {
		idx = len(comps) + idx
	}
	if idx < 0 || idx >= len(comps) {
		return nil, ErrComponentOutOfRange
	}
	return comps[idx], nil
}

// HasPrefix reports whether prefix's components are a component-wise
// prefix of name's, the longest-prefix-match test an NDN forwarder uses
// to route an Interest to a registered producer prefix. Malformed input
// on either side reports false rather than propagating an error, since
// callers use this purely as a routing predicate.
func HasPrefix(name, prefix Name) bool {
	nc, err := NumComponents(name)
	if err != nil {
		return false
	}
	pc, err := NumComponents(prefix)
	if err != nil {
		return false
	}
	if pc > nc {
		return false
	}
	for i := 0; i < pc; i++ {
		a, err := ComponentAt(name, i)
		if err != nil {
			return false
		}
		b, err := ComponentAt(prefix, i)
		if err != nil {
			return false
		}
		if string(a) != string(b) {
			return false
		}
	}
	return true
}

// WrapInterest wraps an already-encoded Name block into an Interest TLV
// (type 0x05). This adapter does not encode Nonce/InterestLifetime into
// the wire bytes: those are runtime-level parameters passed alongside the
// name to Runtime.ExpressInterest (spec.md §1 places the application
// runtime's interest/data dispatch out of scope), not fields this adapter
// needs to be bit-exact about.
func WrapInterest(name []byte) []byte {
	return EncodeBlock(TypeInterest, name)
}

// UnwrapInterestName extracts the Name block carried by an Interest TLV.
func UnwrapInterestName(interest []byte) ([]byte, error) {
	i, err := decodeTyped(interest, TypeInterest)
	if err != nil {
		return nil, err
	}
	n, err := decodeBlock(i.value)
	if err != nil {
		return nil, err
	}
	if n.typ != TypeName {
		return nil, ErrUnexpectedType
	}
	return EncodeBlock(TypeName, n.value), nil
}
