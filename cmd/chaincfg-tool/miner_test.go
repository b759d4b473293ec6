// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
	"gitlab.com/quimeralabs/dogeposd/types/wire"
)

const easyBits = 0x207fffff

func testHeader(t *testing.T, bits uint32) wire.BlockHeader {
	block, err := chaincfg.BuildGenesis(chaincfg.GenesisOpts{
		Message: chaincfg.GenesisMessage,
		Version: 1,
		Time:    chaincfg.GenesisTime,
		Bits:    bits,
	})
	require.NoError(t, err)
	return block.Header
}

func TestMineHeaderSingleWorkerFindsLowestNonce(t *testing.T) {
	header := testHeader(t, easyBits)
	target := pow.CompactToBig(easyBits)

	found, err := mineHeader(context.Background(), header, 10, 1)
	require.NoError(t, err)
	assert.True(t, found.Nonce >= 10)
	assert.Equal(t, uint64(found.Nonce-10+1), found.Attempts)

	header.Nonce = found.Nonce
	hash := header.BlockHash()
	assert.Equal(t, hash, found.Hash)
	assert.True(t, pow.HashToBig(&hash).Cmp(target) <= 0)

	for n := uint32(10); n < found.Nonce; n++ {
		header.Nonce = n
		hash := header.BlockHash()
		assert.True(t, pow.HashToBig(&hash).Cmp(target) > 0, "nonce %d", n)
	}
}

func TestMineHeaderWorkers(t *testing.T) {
	header := testHeader(t, easyBits)

	found, err := mineHeader(context.Background(), header, 0, 4)
	require.NoError(t, err)

	header.Nonce = found.Nonce
	hash := header.BlockHash()
	assert.Equal(t, hash, found.Hash)
	assert.True(t, pow.HashToBig(&hash).Cmp(pow.CompactToBig(easyBits)) <= 0)
	assert.True(t, found.Attempts > 0)
}

func TestMineHeaderErrors(t *testing.T) {
	// A target of one is never met.
	const hardBits = 0x03000001

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name       string
		ctx        context.Context
		bits       uint32
		startNonce uint32
		workers    int
		want       error
	}{
		{"exhausted", context.Background(), hardBits, math.MaxUint32, 4, errNonceSpaceExhausted},
		{"cancelled", ctx, hardBits, 0, 2, context.Canceled},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := mineHeader(test.ctx, testHeader(t, test.bits), test.startNonce, test.workers)
			assert.Equal(t, test.want, err)
		})
	}

	_, err := mineHeader(context.Background(), testHeader(t, easyBits), 0, 0)
	assert.Error(t, err)

	_, err = mineHeader(context.Background(), testHeader(t, 0), 0, 1)
	assert.Error(t, err)
}
