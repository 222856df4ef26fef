// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

// VN is a (Round, SeqNum) pair identifying a published data item,
// spec.md §3's PublishedDataId / LastDataIndex entry.
type VN struct {
	Round uint32
	Seq   uint8
}

// Less reports whether vn sorts strictly before other in lexicographic
// (Round, Seq) order.
func (vn VN) Less(other VN) bool {
	if vn.Round != other.Round {
		return vn.Round < other.Round
	}
	return vn.Seq < other.Seq
}

// LessOrEqual reports vn <= other lexicographically.
func (vn VN) LessOrEqual(other VN) bool {
	return vn == other || vn.Less(other)
}
