// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package obslog implements the observation log from spec.md §4.3: a
// sliding window of W per-round version vectors, keyed by round mod W,
// used to recognize "I've already learned about this round, I just
// missed item k" when a piggyback or round-sweep arrives.
package obslog

// Log is a ring of W version vectors, each holding N peers' highest
// observed sequence number within that slot's round.
type Log struct {
	w        int
	n        int
	slots    [][]uint8
	slotRound []uint32
	hasRound []bool
}

// New returns a Log with window size w over n peers.
func New(w, n int) *Log {
	l := &Log{
		w:         w,
		n:         n,
		slots:     make([][]uint8, w),
		slotRound: make([]uint32, w),
		hasRound:  make([]bool, w),
	}
	for i := range l.slots {
		l.slots[i] = make([]uint8, n)
	}
	return l
}

// Observe records that peer i has been seen at (round, seq), updating the
// round-mod-W slot to the max of what it already held. If the slot
// currently belongs to a different round, it's silently displaced (its
// old contents are overwritten) — this is the ring's only eviction
// policy, per spec.md §4.3 ("older rounds displaced silently").
func (l *Log) Observe(round uint32, peer int, seq uint8) {
	idx := int(round) % l.w
	if !l.hasRound[idx] || l.slotRound[idx] != round {
		for i := range l.slots[idx] {
			l.slots[idx][i] = 0
		}
		l.slotRound[idx] = round
		l.hasRound[idx] = true
	}
	if seq > l.slots[idx][peer] {
		l.slots[idx][peer] = seq
	}
}

// Lookup returns the highest sequence number observed for peer i in
// round, and whether that information is trusted. Per spec.md §4.3, a
// slot is trusted only when the engine has actually seen activity for
// that exact round in that slot; a slot holding some other round (either
// evicted by a later round, or never populated) reports "no information"
// by returning ok=false, distinct from reporting seq=0 for a round it
// genuinely observed nothing above 0 in.
func (l *Log) Lookup(round uint32, peer int) (seq uint8, ok bool) {
	idx := int(round) % l.w
	if !l.hasRound[idx] || l.slotRound[idx] != round {
		return 0, false
	}
	return l.slots[idx][peer], true
}

// Window returns W, the ring's size.
func (l *Log) Window() int {
	return l.w
}
