// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package protocol implements the VectorSync protocol state machine from
// spec.md §4.4: the per-node controller owning the local version vector,
// current round, last-data-index table, and observation log, exposing
// Publish / OnSyncInterest / OnData.
//
// Node is NOT safe for concurrent use (spec.md §5): the host Runtime must
// deliver exactly one event at a time and run each handler to completion
// before the next.
package protocol

import (
	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/config"
	"github.com/ndnsync/vectorsync/internal/fetch"
	"github.com/ndnsync/vectorsync/internal/metrics"
	"github.com/ndnsync/vectorsync/internal/obslog"
	"github.com/ndnsync/vectorsync/internal/pubcache"
	"github.com/ndnsync/vectorsync/internal/roster"
	"github.com/ndnsync/vectorsync/internal/vlog"
	"github.com/ndnsync/vectorsync/internal/vvec"
	"github.com/ndnsync/vectorsync/internal/wire"
)

// PublicationCacheCapacity mirrors the original's
// PUBLICATION_LIST_CAPACITY: the number of self-published items a node
// keeps on hand to answer a peer's recovery fetch.
const PublicationCacheCapacity = 20

// FirstSeqNum is spec.md §3's FIRST_SEQ_NUM: sequence numbers within a
// round start here.
const FirstSeqNum uint8 = 1

// SyncPrefixURI is spec.md §3's fixed sync-interest prefix component.
const SyncPrefixURI = "/vsync"

// Node is the per-node protocol state machine.
type Node struct {
	cfg    *config.Config
	roster *roster.Roster
	self   roster.NodeID

	round uint32
	vv    vvec.Vector
	ldi   []VN
	obs   *obslog.Log

	syncPrefix wire.Name
	fetcher    *fetch.Orchestrator
	cache      *pubcache.Cache
	metrics    *metrics.Engine
	log        vlog.Logger
}

// New builds a Node for self within r, wired to rt for outgoing
// interests/data and publishing metrics/logs through m/log.
func New(cfg *config.Config, r *roster.Roster, self roster.NodeID, rt apprt.Runtime, m *metrics.Engine, log vlog.Logger) *Node {
	n := r.Size()
	return &Node{
		cfg:        cfg,
		roster:     r,
		self:       self,
		vv:         vvec.New(n),
		ldi:        make([]VN, n),
		obs:        obslog.New(cfg.ObservationWindow, n),
		syncPrefix: wire.FromURI(SyncPrefixURI).Encode(),
		fetcher:    fetch.New(rt, config.DefaultInterestLifetime, config.DefaultRetryLifetime, m, log),
		cache:      pubcache.New(PublicationCacheCapacity),
		metrics:    m,
		log:        log,
	}
}

// SyncPrefix returns the encoded sync-interest prefix name, for
// registering with the Runtime.
func (n *Node) SyncPrefix() wire.Name {
	return n.syncPrefix
}

// DataPrefix returns this node's own data prefix name, for registering
// with the Runtime.
func (n *Node) DataPrefix() wire.Name {
	return n.roster.Name(n.self)
}

// Round returns the current round (test/metrics observability).
func (n *Node) Round() uint32 { return n.round }

// SelfSeq returns VV[self] (test/metrics observability).
func (n *Node) SelfSeq() uint8 { return n.vv[n.self] }

// LastDataIndex returns the current LDI for peer i (test observability).
func (n *Node) LastDataIndex(i roster.NodeID) VN { return n.ldi[i] }

// Log returns the node's logger, for callers (like cmd/vsync) wiring
// Runtime callbacks that want to report rejected events consistently.
func (n *Node) Log() vlog.Logger { return n.log }

// PublishIntervalMS returns the configured milliseconds between publish
// ticks, for a caller driving its own publish loop via Runtime.Schedule.
func (n *Node) PublishIntervalMS() int { return n.cfg.PublishIntervalMS }

func (n *Node) maxSeqNum() uint8 {
	return uint8(n.cfg.MaxSeqNum)
}
