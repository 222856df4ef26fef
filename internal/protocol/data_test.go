// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndnsync/vectorsync/internal/roster"
	"github.com/ndnsync/vectorsync/internal/wire"
)

func buildDataPacket(t *testing.T, prefix string, round uint32, seq uint8, content []byte) []byte {
	t.Helper()
	name := wire.FromURI(prefix).AppendUint32(round).AppendUint8(seq).Encode()
	data, _, err := wire.BuildData(name, wire.MetaInfo{FreshnessPeriodMS: -1}, content, wire.DigestSHA256, nil)
	require.NoError(t, err)
	return data
}

func TestOnDataRejectsMalformed(t *testing.T) {
	n, _ := newTestNode(t, 0, []string{"alice", "bob"}, 15)
	_, err := n.OnData([]byte{0xff}, nil)
	require.Error(t, err)
}

func TestOnDataRejectsUnknownPeer(t *testing.T) {
	n, _ := newTestNode(t, 0, []string{"alice", "bob"}, 15)
	data := buildDataPacket(t, "stranger", 0, 1, []byte("x"))
	_, err := n.OnData(data, nil)
	require.Error(t, err)
}

func TestOnDataAdvancesLDIMonotonically(t *testing.T) {
	n, _ := newTestNode(t, 0, []string{"alice", "bob"}, 15)

	data := buildDataPacket(t, "bob", 0, 3, []byte("payload"))
	payload, err := n.OnData(data, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), payload)
	require.Equal(t, VN{Round: 0, Seq: 3}, n.LastDataIndex(1))

	// An older item for the same peer must not regress LDI.
	stale := buildDataPacket(t, "bob", 0, 1, []byte("stale"))
	_, err = n.OnData(stale, nil)
	require.NoError(t, err)
	require.Equal(t, VN{Round: 0, Seq: 3}, n.LastDataIndex(1))
}

func TestOnDataFirstSeqOfRoundChasesPiggybackGap(t *testing.T) {
	n, rt := newTestNode(t, 0, []string{"alice", "bob"}, 15)

	// Peer bob's prior round tail was (round 0, seq 2), already known to
	// us (so n.ldi[bob].Round >= pgVN.Round holds).
	seed := buildDataPacket(t, "bob", 0, 2, []byte("seed"))
	_, err := n.OnData(seed, nil)
	require.NoError(t, err)

	// Now bob's first item of round 1 arrives announcing a piggyback tail
	// of (round 0, seq 2) with nothing observed in between — no gap to
	// chase since our observation log already has seq 2 for round 0.
	pg := append(wire.EncodeVarNum(0), wire.EncodeVarNum(2)...)
	content := append(pg, []byte("first-of-round-1")...)
	name := wire.FromURI("bob").AppendUint32(1).AppendUint8(FirstSeqNum).Encode()
	data, _, err := wire.BuildData(name, wire.MetaInfo{FreshnessPeriodMS: -1}, content, wire.DigestSHA256, nil)
	require.NoError(t, err)

	rt.EXPECT().ExpressInterest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	payload, err := n.OnData(data, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("first-of-round-1"), payload)
	require.Equal(t, VN{Round: 1, Seq: FirstSeqNum}, n.LastDataIndex(1))
}

func TestOnDataNonFirstSeqHasNoPiggybackParsing(t *testing.T) {
	n, _ := newTestNode(t, 0, []string{"alice", "bob"}, 15)

	data := buildDataPacket(t, "bob", 0, 2, []byte("raw content, no header"))
	payload, err := n.OnData(data, nil)
	require.NoError(t, err)
	require.Equal(t, []byte("raw content, no header"), payload)
}

func TestOnDataInterestServesCachedItem(t *testing.T) {
	n, rt := newTestNode(t, 0, []string{"alice", "bob"}, 15)
	rt.EXPECT().ExpressInterest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	data, err := n.Publish(wire.MetaInfo{FreshnessPeriodMS: -1}, []byte("mine"))
	require.NoError(t, err)

	name := n.roster.Name(roster.NodeID(0))
	nb, err := wire.FromName(name)
	require.NoError(t, err)
	nb.AppendUint32(0).AppendUint8(1)
	interest := wire.WrapInterest(nb.Encode())

	rt.EXPECT().PutData(data).Return(nil)

	err = n.OnDataInterest(interest, rt)
	require.NoError(t, err)
}

func TestOnDataInterestMissReturnsBadFormat(t *testing.T) {
	n, rt := newTestNode(t, 0, []string{"alice", "bob"}, 15)

	nb := wire.FromURI("alice")
	nb.AppendUint32(0).AppendUint8(9)
	interest := wire.WrapInterest(nb.Encode())

	err := n.OnDataInterest(interest, rt)
	require.Error(t, err)
}
