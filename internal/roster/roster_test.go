// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndnsync/vectorsync/internal/wire"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestSizeAndPrefix(t *testing.T) {
	r, err := New([]string{"alice", "bob", "carol"})
	require.NoError(t, err)
	require.Equal(t, 3, r.Size())
	require.Equal(t, "bob", r.Prefix(1))
}

func TestIndexOfFindsRegisteredPeer(t *testing.T) {
	r, err := New([]string{"alice", "bob"})
	require.NoError(t, err)

	idx, ok := r.IndexOf([]byte("bob"))
	require.True(t, ok)
	require.Equal(t, NodeID(1), idx)
}

func TestIndexOfMissingPeer(t *testing.T) {
	r, err := New([]string{"alice", "bob"})
	require.NoError(t, err)

	_, ok := r.IndexOf([]byte("carol"))
	require.False(t, ok)
}

func TestNameEncodesPrefix(t *testing.T) {
	r, err := New([]string{"alice"})
	require.NoError(t, err)

	name := r.Name(0)
	comp, err := wire.ComponentAt(name, 0)
	require.NoError(t, err)
	require.Equal(t, "alice", string(comp))
}
