// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
)

// genesisTxHex is the serialized coinbase transaction shared by every
// network genesis block.
const genesisTxHex = "01000000" + "80c21769" + "01" +
	"0000000000000000000000000000000000000000000000000000000000000000" + "ffffffff" +
	"3a" + "00012a36" +
	"41204e657720436f6e6365707420696e2048796272696420426c6f636b636861" +
	"696e202d205175696d657261204c6162732032303236" +
	"ffffffff" + "01" + "0000000000000000" + "00" + "00000000"

func genesisTx() *MsgTx {
	msg := []byte("A New Concept in Hybrid Blockchain - Quimera Labs 2026")
	script := append([]byte{0x00, 0x01, 0x2a, byte(len(msg))}, msg...)

	tx := NewMsgTx(TxVersion, 1763164800)
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: OutPoint{Index: MaxPrevOutIndex},
		SignatureScript:  script,
		Sequence:         MaxTxInSequenceNum,
	})
	tx.AddTxOut(&TxOut{Value: 0, PkScript: []byte{}})
	return tx
}

func TestMsgTxSerialize(t *testing.T) {
	tx := genesisTx()

	got, err := tx.SerializeToHex()
	require.NoError(t, err)
	assert.Equal(t, genesisTxHex, got)
	assert.Equal(t, len(genesisTxHex)/2, tx.SerializeSize())
	assert.True(t, tx.IsCoinBase())

	hash := tx.TxHash()
	assert.Equal(t, "8a5c4b32d5b72be3f66c944e6f402d223aa437c90263dd9450ad15175dd74d9d", hash.String())
}

func TestMsgTxDeserialize(t *testing.T) {
	raw, err := hex.DecodeString(genesisTxHex)
	require.NoError(t, err)

	var tx MsgTx
	require.NoError(t, tx.Deserialize(bytes.NewReader(raw)))

	want := genesisTx()
	assert.Equal(t, want.Version, tx.Version)
	assert.Equal(t, want.Time, tx.Time)
	assert.Equal(t, want.TxIn[0].SignatureScript, tx.TxIn[0].SignatureScript)
	assert.Equal(t, want.TxHash(), tx.TxHash())
}

func TestMsgTxTimeIsCommitted(t *testing.T) {
	a := genesisTx()
	b := a.Copy()
	b.Time++

	assert.NotEqual(t, a.TxHash(), b.TxHash())
	assert.Equal(t, uint32(1763164800), a.Time, "copy must not alias the original")
}

func TestReadVarIntNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"0xfd below 0xfd", []byte{0xfd, 0xfc, 0x00}},
		{"0xfe below 0x10000", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"0xff below 0x100000000", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadVarInt(bytes.NewReader(test.in))
			require.Error(t, err)
			_, ok := err.(*MessageError)
			assert.True(t, ok, "unexpected error type %T", err)
		})
	}
}

func TestVarIntSizes(t *testing.T) {
	tests := []struct {
		val  uint64
		size int
	}{
		{0, 1},
		{0xfc, 1},
		{0xfd, 3},
		{0xffff, 3},
		{0x10000, 5},
		{0xffffffff, 5},
		{0x100000000, 9},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteVarInt(&buf, test.val))
		if buf.Len() != test.size || VarIntSerializeSize(test.val) != test.size {
			t.Errorf("WriteVarInt #%d got: %d want: %d", i, buf.Len(), test.size)
			continue
		}

		got, err := ReadVarInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, test.val, got)
	}
}

func TestOutPointIsNull(t *testing.T) {
	assert.True(t, OutPoint{Index: MaxPrevOutIndex}.IsNull())
	assert.False(t, OutPoint{Index: 0}.IsNull())

	h := chainhash.HashH([]byte("spent"))
	assert.False(t, NewOutPoint(&h, MaxPrevOutIndex).IsNull())
}
