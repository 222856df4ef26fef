// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package roster holds the static, ordered group membership spec.md §3
// describes: N peer data prefixes, position indicating NodeId. The
// roster is immutable after construction — VectorSync has no membership
// change (explicit Non-goal).
package roster

import (
	"fmt"

	"github.com/ndnsync/vectorsync/internal/wire"
)

// NodeID is a node's position in the roster, in [0, N).
type NodeID int

// Roster is the shared, read-only group membership.
type Roster struct {
	prefixes []string
	names    []wire.Name
}

// New builds a Roster from an ordered list of URI-style prefixes
// ("alice", "/alice", "/site/alice" are all accepted).
func New(prefixes []string) (*Roster, error) {
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("roster: must have at least one peer")
	}
	r := &Roster{
		prefixes: append([]string(nil), prefixes...),
		names:    make([]wire.Name, len(prefixes)),
	}
	for i, p := range prefixes {
		r.names[i] = wire.FromURI(p).Encode()
	}
	return r, nil
}

// Size is N, the group size.
func (r *Roster) Size() int {
	return len(r.prefixes)
}

// Prefix returns the raw URI prefix for node id.
func (r *Roster) Prefix(id NodeID) string {
	return r.prefixes[id]
}

// Name returns the encoded Name block for node id's data prefix.
func (r *Roster) Name(id NodeID) wire.Name {
	return r.names[id]
}

// IndexOf returns the NodeId whose data prefix's encoded component bytes
// equal comp, or false if no such peer exists. Linear scan over at most
// 16 entries, grounded on the original source's
// ndn_sync_get_node_index_by_pfx (a plain comparison loop — a map would
// be pointless overhead at this size).
func (r *Roster) IndexOf(comp []byte) (NodeID, bool) {
	for i, name := range r.names {
		c, err := wire.ComponentAt(name, 0)
		if err != nil {
			continue
		}
		if string(c) == string(comp) {
			return NodeID(i), true
		}
	}
	return 0, false
}
