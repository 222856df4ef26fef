// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pubcache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndnsync/vectorsync/internal/verrors"
)

func TestSearchMissOnEmptyCache(t *testing.T) {
	c := New(4)
	_, ok := c.Search(Key{Round: 1, Seq: 1})
	require.False(t, ok)
}

func TestInsertThenSearch(t *testing.T) {
	c := New(4)
	key := Key{Round: 2, Seq: 3}
	require.NoError(t, c.Insert(key, []byte("payload")))

	got, ok := c.Search(key)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), got)
	require.Equal(t, 1, c.Len())
}

func TestReinsertSameKeyIsNoop(t *testing.T) {
	c := New(4)
	key := Key{Round: 1, Seq: 1}
	require.NoError(t, c.Insert(key, []byte("first")))
	require.NoError(t, c.Insert(key, []byte("first")))
	require.Equal(t, 1, c.Len())
}

func TestInsertFillsCapacityThenErrors(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Insert(Key{Round: 1, Seq: 1}, []byte("a")))
	require.NoError(t, c.Insert(Key{Round: 1, Seq: 2}, []byte("b")))

	err := c.Insert(Key{Round: 1, Seq: 3}, []byte("c"))
	require.ErrorIs(t, err, verrors.ErrNoSpace)
	require.Equal(t, 2, c.Len())
}

func TestCapReportsFixedSize(t *testing.T) {
	c := New(5)
	require.Equal(t, 5, c.Cap())
	require.Equal(t, 0, c.Len())
}

func TestDistinctKeysDoNotCollide(t *testing.T) {
	c := New(4)
	require.NoError(t, c.Insert(Key{Round: 1, Seq: 1}, []byte("a")))
	require.NoError(t, c.Insert(Key{Round: 2, Seq: 1}, []byte("b")))

	got, ok := c.Search(Key{Round: 1, Seq: 1})
	require.True(t, ok)
	require.Equal(t, []byte("a"), got)

	got, ok = c.Search(Key{Round: 2, Seq: 1})
	require.True(t, ok)
	require.Equal(t, []byte("b"), got)
}
