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

// mainGenesisHeaderHex is the serialized header of the main network genesis
// block.
const mainGenesisHeaderHex = "01000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"9d4dd75d1715ad5094dd6302c937a43a222d406f4e946cf6e32bb7d5324b5c8a" +
	"80c21769" + "ffff0f1e" + "95410f00"

func TestBlockHeaderSerialize(t *testing.T) {
	merkle, err := chainhash.NewHashFromStr("8a5c4b32d5b72be3f66c944e6f402d223aa437c90263dd9450ad15175dd74d9d")
	require.NoError(t, err)

	bh := NewBlockHeader(1, &chainhash.Hash{}, merkle, 1763164800, 0x1e0fffff, 999829)

	var buf bytes.Buffer
	require.NoError(t, bh.Serialize(&buf))
	assert.Equal(t, mainGenesisHeaderHex, hex.EncodeToString(buf.Bytes()))
	assert.Equal(t, buf.Bytes(), bh.Bytes())
	assert.Len(t, buf.Bytes(), MaxBlockHeaderPayload)

	var decoded BlockHeader
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, *bh, decoded)
	assert.Equal(t, int64(1763164800), decoded.Time().Unix())
}

func TestBlockHeaderHash(t *testing.T) {
	tests := []struct {
		name  string
		nonce uint32
		bits  uint32
		want  string
	}{
		{
			name:  "main genesis",
			nonce: 999829,
			bits:  0x1e0fffff,
			want:  "000002a056d75f0fb88ded1839127d3d995e2cf0010a1acfd734398518d37f83",
		},
		{
			name:  "test genesis",
			nonce: 127143,
			bits:  0x1f00ffff,
			want:  "00003522bd22dbda8b32c911eb058ff79d0d59d4156d6a6f66ddcfbbcb09a225",
		},
		{
			name:  "regtest genesis",
			nonce: 92159,
			bits:  0x1f00ffff,
			want:  "d93ca7ccf8b192633985471186b6f77a65fbab9c462a832ab8708286bd9f34f9",
		},
	}

	merkle, err := chainhash.NewHashFromStr("8a5c4b32d5b72be3f66c944e6f402d223aa437c90263dd9450ad15175dd74d9d")
	require.NoError(t, err)

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bh := NewBlockHeader(1, &chainhash.Hash{}, merkle, 1763164800, test.bits, test.nonce)
			got := bh.BlockHash()
			if got.String() != test.want {
				t.Errorf("BlockHash: wrong hash\n got: %s want: %s", got, test.want)
			}
		})
	}
}

func TestBitcoinNetStringer(t *testing.T) {
	tests := []struct {
		in   BitcoinNet
		want string
		wire string
	}{
		{MainNet, "MainNet", "44504f53"},
		{TestNet, "TestNet", "4c9034fb"},
		{RegTest, "RegTest", "c5fccf06"},
		{0xffffffff, "Unknown BitcoinNet (4294967295)", "ffffffff"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result, test.want)
			continue
		}

		b := test.in.Bytes()
		assert.Equal(t, test.wire, hex.EncodeToString(b[:]))
	}
}
