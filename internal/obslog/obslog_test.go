// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package obslog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupUntrustedBeforeObserve(t *testing.T) {
	l := New(4, 2)
	_, ok := l.Lookup(0, 0)
	require.False(t, ok)
}

func TestObserveThenLookup(t *testing.T) {
	l := New(4, 2)
	l.Observe(5, 0, 3)

	seq, ok := l.Lookup(5, 0)
	require.True(t, ok)
	require.Equal(t, uint8(3), seq)

	// Peer 1 has no observed activity in this round yet.
	seq, ok = l.Lookup(5, 1)
	require.True(t, ok)
	require.Equal(t, uint8(0), seq)
}

func TestObserveTakesMaxWithinSameRound(t *testing.T) {
	l := New(4, 1)
	l.Observe(1, 0, 3)
	l.Observe(1, 0, 2)
	l.Observe(1, 0, 7)

	seq, ok := l.Lookup(1, 0)
	require.True(t, ok)
	require.Equal(t, uint8(7), seq)
}

func TestWindowEvictionDisplacesOlderRound(t *testing.T) {
	l := New(4, 1)
	l.Observe(1, 0, 9) // slot 1 % 4 = 1

	// Round 5 maps to the same slot (5 % 4 == 1) and silently displaces it.
	l.Observe(5, 0, 2)

	_, ok := l.Lookup(1, 0)
	require.False(t, ok, "displaced round must report untrusted, not stale data")

	seq, ok := l.Lookup(5, 0)
	require.True(t, ok)
	require.Equal(t, uint8(2), seq)
}

func TestWindowReturnsConfiguredSize(t *testing.T) {
	l := New(8, 3)
	require.Equal(t, 8, l.Window())
}

func TestLookupDistinguishesZeroFromUnseen(t *testing.T) {
	l := New(4, 1)
	l.Observe(2, 0, 0)

	seq, ok := l.Lookup(2, 0)
	require.True(t, ok)
	require.Equal(t, uint8(0), seq)

	_, ok = l.Lookup(3, 0)
	require.False(t, ok)
}
