// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"encoding/binary"

	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/pubcache"
	"github.com/ndnsync/vectorsync/internal/verrors"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// OnDataInterest answers an incoming interest for one of this node's own
// prior publications, grounded on the original source's
// _on_wtf_interest: parse (round, seq) from the interest name, look the
// item up in the publication cache, and hand it to rt.PutData if found.
//
// A miss (item never published, already evicted, or the interest was
// malformed) is ErrBadFormat/ErrNoSpace and simply drops the interest,
// matching the original's behavior of logging and returning without
// satisfying it — NDN has no "not found" response, only silence.
func (n *Node) OnDataInterest(interest []byte, rt apprt.Runtime) error {
	n.metrics.DataInterestsRecv.Inc()

	name, err := wire.UnwrapInterestName(interest)
	if err != nil {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}

	roundComp, err := wire.ComponentAt(name, 1)
	if err != nil || len(roundComp) != 4 {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}
	seqComp, err := wire.ComponentAt(name, 2)
	if err != nil || len(seqComp) != 1 {
		n.metrics.BadFormatTotal.Inc()
		return verrors.ErrBadFormat
	}

	key := pubcache.Key{
		Round: binary.BigEndian.Uint32(roundComp),
		Seq:   seqComp[0],
	}
	data, ok := n.cache.Search(key)
	if !ok {
		n.log.Debug("data interest for unknown item", "round", key.Round, "seq", key.Seq)
		return verrors.ErrBadFormat
	}

	if err := rt.PutData(data); err != nil {
		n.metrics.NoSpaceTotal.Inc()
		return verrors.ErrNoSpace
	}
	return nil
}
