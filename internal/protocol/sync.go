// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"encoding/binary"

	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/roster"
	"github.com/ndnsync/vectorsync/internal/verrors"
	"github.com/ndnsync/vectorsync/internal/vvec"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// OnSyncInterest processes an incoming sync interest: learns the peer's
// (round, version vector), detects which of our missing items it newly
// announces, and issues fetches for them, per spec.md §4.4.2.
//
// onData is passed through to every recovery interest this call issues
// (it's what lets the caller route fetched data back into OnData).
func (n *Node) OnSyncInterest(interest []byte, onData apprt.DataCallback) error {
	n.metrics.SyncInterestsRecv.Inc()

	name, err := wire.UnwrapInterestName(interest)
	if err != nil {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}

	rnComp, err := wire.ComponentAt(name, 1)
	if err != nil || len(rnComp) != 4 {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}
	vvComp, err := wire.ComponentAt(name, 2)
	if err != nil || len(vvComp) != n.roster.Size() {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}

	rPeer := binary.BigEndian.Uint32(rnComp)
	vvPeer := vvec.Vector(vvComp)

	// Canonical fix from spec.md §9: bump our round BEFORE merging, so a
	// higher peer round never gets merged against a stale local vector.
	if rPeer > n.round {
		if rPeer > n.round+1 {
			if err := n.recoverRoundSweep(n.round, rPeer, onData); err != nil {
				return err
			}
		}
		n.round = rPeer
		n.vv.Reset()
	}

	oldVV := n.vv.Clone()
	vvec.Merge(n.vv, vvPeer, n.vv)
	n.metrics.CurrentRound.Set(float64(n.round))

	var fetchErr error
	for i := 0; i < n.roster.Size(); i++ {
		for s := int(oldVV[i]) + 1; s <= int(vvPeer[i]); s++ {
			peer := n.roster.Name(roster.NodeID(i))
			cb := n.wrapDataCallback(onData)
			if err := n.fetcher.FetchItem(peer, rPeer, uint8(s), cb); err != nil {
				fetchErr = err
			}
		}
	}
	if fetchErr != nil {
		return fetchErr
	}
	return nil
}

// recoverRoundSweep issues the "one interest per peer per skipped round"
// recovery sweep for a multi-round jump, per spec.md §4.4.2 and §9 (this
// replaces the earlier nested MAX_SEQ_NUM-sized sweep from
// original_source with the canonical, piggyback-chained design).
func (n *Node) recoverRoundSweep(from, to uint32, onData apprt.DataCallback) error {
	var fetchErr error
	for rr := from; rr < to-1; rr++ {
		target := rr + 1
		for i := 0; i < n.roster.Size(); i++ {
			peer := n.roster.Name(roster.NodeID(i))
			cb := n.wrapDataCallback(onData)
			if err := n.fetcher.FetchRoundHead(peer, target, cb); err != nil {
				fetchErr = err
				continue
			}
			n.metrics.RecoverSweepsTotal.Inc()
		}
	}
	return fetchErr
}

// wrapDataCallback routes a fetched item back through OnData so LDI and
// the observation log stay consistent however data arrives (direct
// publish-time push, gap fetch, or round-head recovery).
func (n *Node) wrapDataCallback(onData apprt.DataCallback) apprt.DataCallback {
	return func(data []byte) {
		if _, err := n.OnData(data, nil); err != nil {
			n.log.Debug("fetched data rejected", "err", err)
		}
		if onData != nil {
			onData(data)
		}
	}
}
