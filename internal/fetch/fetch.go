// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fetch implements the fetch orchestrator from spec.md §4.5: a
// thin wrapper that builds the (prefix, round, seq) interest name and
// hooks the caller's callbacks into the apprt.Runtime, with a default
// timeout policy of one longer-lifetime retry.
package fetch

import (
	"time"

	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/metrics"
	"github.com/ndnsync/vectorsync/internal/verrors"
	"github.com/ndnsync/vectorsync/internal/vlog"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// Orchestrator issues recovery interests on behalf of internal/protocol.
type Orchestrator struct {
	rt       apprt.Runtime
	lifetime time.Duration
	retry    time.Duration
	metrics  *metrics.Engine
	log      vlog.Logger
}

// New returns an Orchestrator with the given default lifetime and retry
// lifetime (spec.md §6: 1000ms default, 20000ms retry).
func New(rt apprt.Runtime, lifetime, retry time.Duration, m *metrics.Engine, log vlog.Logger) *Orchestrator {
	return &Orchestrator{rt: rt, lifetime: lifetime, retry: retry, metrics: m, log: log}
}

// FetchItem requests a single missing data item (prefix, round, seq).
// onData is invoked if it arrives. Errors are verrors.ErrBadFormat for
// a malformed prefix and verrors.ErrNoSpace for a failed send.
func (o *Orchestrator) FetchItem(prefix wire.Name, round uint32, seq uint8, onData apprt.DataCallback) error {
	nb, err := wire.FromName(prefix)
	if err != nil {
		return verrors.ErrBadFormat
	}
	nb.AppendUint32(round)
	nb.AppendUint8(seq)
	return o.express(nb.Encode(), onData)
}

// FetchRoundHead requests the first (piggyback-carrying) item of a round
// under prefix, used by the multi-round recovery sweep (spec.md §4.4.2).
func (o *Orchestrator) FetchRoundHead(prefix wire.Name, round uint32, onData apprt.DataCallback) error {
	return o.FetchItem(prefix, round, 1, onData)
}

func (o *Orchestrator) express(name []byte, onData apprt.DataCallback) error {
	interest := wire.WrapInterest(name)
	o.metrics.FetchesIssuedTotal.Inc()
	onTimeout := func() {
		o.log.Debug("fetch timed out, retrying with longer lifetime")
		// One retry step, no further re-arming, per spec.md §5.
		_ = o.rt.ExpressInterest(interest, o.retry, onData, nil)
	}
	if err := o.rt.ExpressInterest(interest, o.lifetime, onData, onTimeout); err != nil {
		o.metrics.NoSpaceTotal.Inc()
		return verrors.ErrNoSpace
	}
	return nil
}

// Broadcast sends a sync interest carrying (round, vv) under syncPrefix.
// Its response, if any, is ignored — sync interests exist only to flood
// the vector, per spec.md §4.4.1 step 5.
func (o *Orchestrator) Broadcast(syncPrefix wire.Name, round uint32, vv []uint8) error {
	nb, err := wire.FromName(syncPrefix)
	if err != nil {
		return verrors.ErrBadFormat
	}
	nb.AppendUint32(round)
	nb.AppendBytes(vv)
	o.metrics.SyncInterestsSent.Inc()
	if err := o.rt.ExpressInterest(wire.WrapInterest(nb.Encode()), o.lifetime, nil, nil); err != nil {
		o.metrics.NoSpaceTotal.Inc()
		return verrors.ErrNoSpace
	}
	return nil
}
