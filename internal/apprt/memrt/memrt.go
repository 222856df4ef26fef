// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memrt implements a single-process, in-memory apprt.Runtime,
// grounded on the original source's sys/net/ndn/app.c: one shared
// message queue (here, a channel of closures) that a single dispatch
// goroutine drains in order, so every RegisterPrefix/ExpressInterest/
// PutData callback fires one at a time, exactly like ndn_app_run's
// msg_receive loop. internal/protocol.Node depends on this serialization
// to hold its single-threaded contract even though timers fire
// concurrently with the rest of the demo.
//
// A Hub stands in for the broadcast-capable radio link the original
// ndn_sync examples ran over (RIOT's 6LoWPAN/IEEE 802.15.4 stack):
// every Runtime attached to a Hub sees every Interest whose name the
// Runtime has a registered prefix for, whichever other peer sent it (a
// Runtime never receives its own interests). This is what makes a sync-interest flood reach all peers while a
// fetch interest for one peer's data prefix reaches only that peer.
package memrt

import (
	"sync"
	"time"

	"github.com/ndnsync/vectorsync/internal/apprt"
	"github.com/ndnsync/vectorsync/internal/verrors"
	"github.com/ndnsync/vectorsync/internal/vlog"
	"github.com/ndnsync/vectorsync/internal/wire"
)

type registration struct {
	prefix     wire.Name
	onInterest apprt.InterestCallback
	owner      *Runtime
}

type pendingInterest struct {
	name   wire.Name
	onData apprt.DataCallback
	timer  *time.Timer
	fired  bool
}

// Hub is the shared medium a demo or test attaches one Runtime per peer
// to.
type Hub struct {
	mu     sync.Mutex
	regs   []*registration
	rts    []*Runtime
	events chan func()
	done   chan struct{}
	log    vlog.Logger
}

// NewHub starts a Hub's dispatch goroutine.
func NewHub(log vlog.Logger) *Hub {
	h := &Hub{
		events: make(chan func(), 256),
		done:   make(chan struct{}),
		log:    log,
	}
	go h.loop()
	return h
}

func (h *Hub) loop() {
	for {
		select {
		case fn := <-h.events:
			fn()
		case <-h.done:
			return
		}
	}
}

// Close stops the Hub's dispatch goroutine. Safe to call once; further
// posts after Close are dropped silently, matching a demo process
// shutting down mid-flight.
func (h *Hub) Close() {
	close(h.done)
}

func (h *Hub) post(fn func()) {
	select {
	case h.events <- fn:
	case <-h.done:
	}
}

// NewRuntime attaches a new peer to the hub, named for log lines only.
func (h *Hub) NewRuntime(name string) *Runtime {
	rt := &Runtime{hub: h, name: name}
	h.mu.Lock()
	h.rts = append(h.rts, rt)
	h.mu.Unlock()
	return rt
}

// Runtime is one peer's apprt.Runtime, backed by a shared Hub.
type Runtime struct {
	hub  *Hub
	name string

	mu      sync.Mutex
	pending []*pendingInterest
}

var _ apprt.Runtime = (*Runtime)(nil)

// RegisterPrefix installs onInterest for prefix, replacing any handler
// this Runtime previously registered for the same prefix.
func (rt *Runtime) RegisterPrefix(prefix []byte, onInterest apprt.InterestCallback) error {
	rt.hub.mu.Lock()
	defer rt.hub.mu.Unlock()
	for _, r := range rt.hub.regs {
		if r.owner == rt && string(r.prefix) == string(prefix) {
			r.onInterest = onInterest
			return nil
		}
	}
	rt.hub.regs = append(rt.hub.regs, &registration{
		prefix:     append(wire.Name(nil), prefix...),
		onInterest: onInterest,
		owner:      rt,
	})
	return nil
}

// ExpressInterest delivers interest (already an encoded Interest TLV) to
// every other Runtime on the hub whose registered prefix matches its
// name, and arms a real timer for lifetime that fires onTimeout if
// nothing calls PutData with matching data first.
func (rt *Runtime) ExpressInterest(interest []byte, lifetime time.Duration, onData apprt.DataCallback, onTimeout apprt.TimeoutCallback) error {
	name, err := wire.UnwrapInterestName(interest)
	if err != nil {
		return verrors.ErrBadFormat
	}

	pi := &pendingInterest{name: name, onData: onData}
	rt.mu.Lock()
	rt.pending = append(rt.pending, pi)
	rt.mu.Unlock()

	pi.timer = time.AfterFunc(lifetime, func() {
		rt.hub.post(func() {
			rt.mu.Lock()
			removed := removePending(&rt.pending, pi)
			rt.mu.Unlock()
			if removed && onTimeout != nil {
				onTimeout()
			}
		})
	})

	rt.hub.post(func() {
		rt.hub.mu.Lock()
		var matches []apprt.InterestCallback
		for _, r := range rt.hub.regs {
			if r.owner == rt {
				continue
			}
			if wire.HasPrefix(name, r.prefix) {
				matches = append(matches, r.onInterest)
			}
		}
		rt.hub.mu.Unlock()
		for _, cb := range matches {
			cb(interest)
		}
	})
	return nil
}

// PutData delivers data to whichever pending interests, on whichever
// other Runtimes, requested exactly its name — the Data TLV's own Name
// must match bit-for-bit, mirroring NDN's rule that a Data packet
// satisfies an Interest only when its full name matches.
func (rt *Runtime) PutData(data []byte) error {
	name, err := wire.ParseDataName(data)
	if err != nil {
		return verrors.ErrBadFormat
	}

	rt.hub.mu.Lock()
	owners := make(map[*Runtime]struct{})
	for _, other := range rt.hub.rts {
		if other != rt {
			owners[other] = struct{}{}
		}
	}
	rt.hub.mu.Unlock()

	rt.hub.post(func() {
		for owner := range owners {
			owner.mu.Lock()
			var matched []*pendingInterest
			kept := owner.pending[:0]
			for _, p := range owner.pending {
				if string(p.name) == string(name) {
					matched = append(matched, p)
				} else {
					kept = append(kept, p)
				}
			}
			owner.pending = kept
			owner.mu.Unlock()
			for _, p := range matched {
				p.timer.Stop()
				if p.onData != nil {
					p.onData(data)
				}
			}
		}
	})
	return nil
}

// Schedule invokes fn on the hub's dispatch goroutine after delay,
// mirroring ndn_app_schedule's use by the original vsync publish loop
// to re-arm itself.
func (rt *Runtime) Schedule(delay time.Duration, fn func()) error {
	time.AfterFunc(delay, func() {
		rt.hub.post(fn)
	})
	return nil
}

func removePending(list *[]*pendingInterest, pi *pendingInterest) bool {
	for i, p := range *list {
		if p == pi {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
