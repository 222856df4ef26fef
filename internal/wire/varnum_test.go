// Copyright (C) 2025, VectorSync Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarNumRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		value        uint64
		wantConsumed int
		wantLead     byte
	}{
		{"zero", 0, 1, 0},
		{"one byte max", 252, 1, 252},
		{"three byte min", 253, 3, 253},
		{"three byte max", 0xFFFF, 3, 253},
		{"five byte min", 0x10000, 5, 254},
		{"five byte max", 0xFFFFFFFF, 5, 254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeVarNum(tt.value)
			require.Len(t, enc, tt.wantConsumed)
			require.Equal(t, tt.wantLead, enc[0])

			got, consumed, err := DecodeVarNum(enc)
			require.NoError(t, err)
			require.Equal(t, tt.value, got)
			require.Equal(t, tt.wantConsumed, consumed)
		})
	}
}

func TestVarNumDecodeTruncated(t *testing.T) {
	_, _, err := DecodeVarNum(nil)
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeVarNum([]byte{253, 0x01})
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeVarNum([]byte{254, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestVarNumDecodeTooLarge(t *testing.T) {
	_, _, err := DecodeVarNum([]byte{255, 0, 0, 0, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrVarNumTooLarge)
}

func TestVarNumDecodeConsumesOnlyItsOwnBytes(t *testing.T) {
	enc := EncodeVarNum(10)
	buf := append(enc, 0xAA, 0xBB)
	got, consumed, err := DecodeVarNum(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got)
	require.Equal(t, len(enc), consumed)
}
