// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
	"gitlab.com/quimeralabs/dogeposd/types/wire"
)

var errNonceSpaceExhausted = errors.New("no nonce satisfies the target")

// solution is a header nonce whose hash is at or below the header target.
type solution struct {
	Nonce    uint32
	Hash     chainhash.Hash
	Attempts uint64
}

// mineHeader searches the nonce space of header from startNonce upwards.
// Worker i tries startNonce+i, startNonce+i+workers and so on, so a single
// worker always returns the lowest matching nonce.  The search stops at the
// first solution, on ctx cancellation or once every nonce was tried.
func mineHeader(ctx context.Context, header wire.BlockHeader, startNonce uint32,
	workers int) (solution, error) {
	if workers < 1 {
		return solution{}, errors.Errorf("invalid worker count %d", workers)
	}

	target := pow.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return solution{}, errors.Wrapf(pow.ErrTargetOutOfRange,
			"bits %08x encode a non positive target", header.Bits)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		found    solution
		ok       bool
		attempts uint64
	)

	total := uint64(math.MaxUint32) + 1 - uint64(startNonce)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(offset uint64) {
			defer wg.Done()

			candidate := header
			for n := offset; n < total; n += uint64(workers) {
				select {
				case <-ctx.Done():
					return
				default:
				}

				candidate.Nonce = startNonce + uint32(n)
				hash := candidate.BlockHash()
				atomic.AddUint64(&attempts, 1)

				if pow.HashToBig(&hash).Cmp(target) <= 0 {
					once.Do(func() {
						found = solution{Nonce: candidate.Nonce, Hash: hash}
						ok = true
					})
					cancel()
					return
				}
			}
		}(uint64(i))
	}
	wg.Wait()

	if ok {
		found.Attempts = atomic.LoadUint64(&attempts)
		return found, nil
	}
	if err := ctx.Err(); err != nil {
		return solution{}, err
	}
	return solution{}, errNonceSpaceExhausted
}
