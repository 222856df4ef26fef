// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"encoding/binary"

	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/verrors"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// OnData processes a received data packet, advances LDI/observation-log
// state monotonically, and — for the first item of a round — chases the
// piggybacked previous-round tail via onData, per spec.md §4.4.3.
//
// Returns the user payload (with any piggyback header stripped) pointing
// into data's own backing array. Bad TLV is ErrBadFormat and drops the
// event entirely (no state change). A downstream backfill-interest send
// failure is ErrNoSpace but does NOT roll back the LDI/log updates that
// precede it in this function — spec.md §4.4.3's failure model keeps
// that partial progress.
func (n *Node) OnData(data []byte, onData apprt.DataCallback) ([]byte, error) {
	name, err := wire.ParseDataName(data)
	if err != nil {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}

	prefixComp, err := wire.ComponentAt(name, 0)
	if err != nil {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}
	peer, ok := n.roster.IndexOf(prefixComp)
	if !ok {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}

	roundComp, err := wire.ComponentAt(name, 1)
	if err != nil || len(roundComp) != 4 {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}
	seqComp, err := wire.ComponentAt(name, 2)
	if err != nil || len(seqComp) != 1 {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}
	round := binary.BigEndian.Uint32(roundComp)
	seq := seqComp[0]

	content, err := wire.ParseDataContent(data)
	if err != nil {
		n.metrics.BadFormatTotal.Inc()
		return nil, verrors.ErrBadFormat
	}

	payload := content
	var backfillErr error
	if seq == FirstSeqNum {
		pgRound, rn, err := wire.DecodeVarNum(content)
		if err != nil {
			n.metrics.BadFormatTotal.Inc()
			return nil, verrors.ErrBadFormat
		}
		pgSeq, sn, err := wire.DecodeVarNum(content[rn:])
		if err != nil {
			n.metrics.BadFormatTotal.Inc()
			return nil, verrors.ErrBadFormat
		}
		payload = content[rn+sn:]

		pgVN := VN{Round: uint32(pgRound), Seq: uint8(pgSeq)}
		if pgVN.Round <= n.ldi[peer].Round {
			start, ok := n.obs.Lookup(pgVN.Round, int(peer))
			if !ok {
				start = 0
			}
			for s := int(start) + 1; s <= int(pgVN.Seq); s++ {
				peerPrefix := n.roster.Name(peer)
				cb := n.wrapDataCallback(onData)
				if err := n.fetcher.FetchItem(peerPrefix, pgVN.Round, uint8(s), cb); err != nil {
					backfillErr = err
				}
			}
		}
	}

	here := VN{Round: round, Seq: seq}
	if n.ldi[peer].Less(here) {
		n.ldi[peer] = here
	}
	n.obs.Observe(round, int(peer), seq)
	n.metrics.DataReceivedTotal.Inc()

	if backfillErr != nil {
		return payload, backfillErr
	}
	return payload, nil
}
