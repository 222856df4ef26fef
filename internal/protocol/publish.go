// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"github.com/ndnsync/vectorsync/internal/pubcache"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// ContentTypeBlob is the MetaInfo ContentType this engine always
// publishes with, matching the original source's NDN_CONTENT_TYPE_BLOB.
const ContentTypeBlob uint32 = 0

// Publish constructs, signs, and returns a new data packet for content,
// then broadcasts a sync interest announcing the resulting version
// vector, per spec.md §4.4.1.
//
// Only a wire-encoding failure (the node's own prefix failing to
// re-parse, or BuildData failing) returns a nil packet; VV[self]/Round are left untouched in that case.
// This resolves the open question in spec.md §9 against the original's
// behavior: the self-advance happens only after every fallible step
// (name construction, signing) has already succeeded, so a failed
// Publish never leaves the local vector pointing at a packet that was
// never produced. A failure to broadcast the resulting sync interest,
// by contrast, does not unwind the publish — the data packet was already
// produced and handed to the caller, and losing the announcement is a
// transient no_space condition logged here, not surfaced as a Publish
// failure (spec.md §4.4.1 only names allocation/codec failure as causes
// to return None).
func (n *Node) Publish(meta wire.MetaInfo, content []byte) ([]byte, error) {
	rollover := n.vv[n.self] == n.maxSeqNum()

	round := n.round
	seq := n.vv[n.self] + 1
	if rollover {
		round = n.round + 1
		seq = FirstSeqNum
	}

	published := content
	if seq == FirstSeqNum {
		prev := n.ldi[n.self]
		pg := append(wire.EncodeVarNum(uint64(prev.Round)), wire.EncodeVarNum(uint64(prev.Seq))...)
		published = append(append([]byte{}, pg...), content...)
	}

	name, err := wire.FromName(n.roster.Name(n.self))
	if err != nil {
		return nil, err
	}
	name.AppendUint32(round)
	name.AppendUint8(seq)

	kind := wire.DigestSHA256
	if len(n.cfg.HMACKey) > 0 {
		kind = wire.HMACSHA256
	}
	data, _, err := wire.BuildData(name.Encode(), meta, published, kind, n.cfg.HMACKey)
	if err != nil {
		return nil, err
	}

	// All fallible steps succeeded: commit the advance.
	if rollover {
		n.vv.Reset()
		n.round = round
		n.metrics.RolloversTotal.Inc()
	}
	n.vv[n.self] = seq
	n.ldi[n.self] = VN{Round: round, Seq: seq}
	n.obs.Observe(round, int(n.self), seq)
	if err := n.cache.Insert(pubcache.Key{Round: round, Seq: seq}, data); err != nil {
		// Mirrors the original's unchecked _publication_list_insert call:
		// a full cache only costs this node the ability to answer a late
		// recovery fetch for this particular item, not the publish itself.
		n.log.Warn("publish: publication cache full, item won't be re-servable", "round", round, "seq", seq)
	}
	n.metrics.PublishesTotal.Inc()
	n.metrics.CurrentRound.Set(float64(n.round))
	n.metrics.CurrentSelfSeq.Set(float64(n.vv[n.self]))

	if err := n.fetcher.Broadcast(n.syncPrefix, round, n.vv); err != nil {
		n.log.Warn("publish: failed to broadcast sync interest", "round", round, "seq", seq, "err", err)
	}

	return data, nil
}
