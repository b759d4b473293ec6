// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
	"gopkg.in/yaml.v3"
)

func (app *App) ListCmd(c *cli.Context) error {
	for _, name := range app.registry.Networks() {
		params, err := app.registry.Get(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Fprintf(app.out, "%-8s magic=%08x port=%-6s genesis=%s\n",
			params.Name, uint32(params.Net), params.DefaultPort, params.GenesisHash())
	}
	return nil
}

func (app *App) ShowCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(newParamsView(params))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "unable to encode parameters"), 1)
	}
	_, err = app.out.Write(out)
	return err
}

func (app *App) GenesisCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	block := params.GenesisBlock
	header := block.Header
	coinbase, err := block.Transactions[0].SerializeToHex()
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(app.out, "network:     %s\n", params.Name)
	fmt.Fprintf(app.out, "hash:        %s\n", block.BlockHash())
	fmt.Fprintf(app.out, "merkle root: %s\n", header.MerkleRoot)
	fmt.Fprintf(app.out, "version:     %d\n", header.Version)
	fmt.Fprintf(app.out, "time:        %d\n", header.Timestamp)
	fmt.Fprintf(app.out, "bits:        %08x\n", header.Bits)
	fmt.Fprintf(app.out, "nonce:       %d\n", header.Nonce)
	fmt.Fprintf(app.out, "coinbase:    %s\n", coinbase)

	// The coinbase inclusion proof must fold into the header merkle root.
	txHashes := block.TxHashes()
	proof := chainhash.BuildMerkleTreeProof(txHashes)
	if !chainhash.ValidateMerkleTreeProof(txHashes[0], proof, header.MerkleRoot) {
		return cli.Exit(fmt.Errorf("coinbase proof does not match merkle root %s",
			header.MerkleRoot), 1)
	}
	fmt.Fprintf(app.out, "coinbase proof: %d hashes, verified\n", len(proof))
	for i := range proof {
		fmt.Fprintf(app.out, "  %s\n", proof[i])
	}

	if c.Bool(flagHex) {
		var buf bytes.Buffer
		if err := block.Serialize(&buf); err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Fprintf(app.out, "block:       %s\n", hex.EncodeToString(buf.Bytes()))
	}

	if c.Bool(flagDump) {
		spew.Fdump(app.out, block)
	}
	return nil
}

func (app *App) CheckpointsCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	if path := c.String(flagFile); path != "" {
		return app.verifyCheckpointFile(params, path)
	}

	switch c.String(flagFormat) {
	case "csv":
		if err := params.Checkpoints.WriteCSV(app.out); err != nil {
			return cli.Exit(err, 1)
		}
	case "text":
		for _, cp := range params.Checkpoints.All() {
			fmt.Fprintf(app.out, "%d %s\n", cp.Height, cp.Hash)
		}
	default:
		return cli.Exit(fmt.Errorf("unknown format %q, use csv or text", c.String(flagFormat)), 1)
	}
	return nil
}

// verifyCheckpointFile checks a checkpoint csv against the network: the
// genesis entry must match and shared heights must agree.
func (app *App) verifyCheckpointFile(params *chaincfg.Params, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer file.Close()

	checkpoints, err := chaincfg.ReadCheckpointsCSV(file)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if hash, ok := checkpoints.Lookup(0); ok && !hash.IsEqual(params.GenesisHash()) {
		return cli.Exit(fmt.Errorf("genesis checkpoint %s does not match %s genesis %s",
			hash, params.Name, params.GenesisHash()), 1)
	}

	for _, cp := range checkpoints.All() {
		known, ok := params.Checkpoints.Lookup(cp.Height)
		if ok && !known.IsEqual(cp.Hash) {
			return cli.Exit(fmt.Errorf("checkpoint at height %d is %s, %s expects %s",
				cp.Height, cp.Hash, params.Name, known), 1)
		}
	}

	fmt.Fprintf(app.out, "%d checkpoints agree with %s\n", checkpoints.Len(), params.Name)
	return nil
}

func (app *App) MineCmd(c *cli.Context) error {
	params, err := app.params(c)
	if err != nil {
		return err
	}

	genesis := params.GenesisBlock
	opts := chaincfg.GenesisOpts{
		Message:      chaincfg.GenesisMessage,
		Version:      genesis.Header.Version,
		Time:         genesis.Header.Timestamp,
		Bits:         genesis.Header.Bits,
		Reward:       genesis.Transactions[0].TxOut[0].Value,
		RewardScript: genesis.Transactions[0].TxOut[0].PkScript,
	}

	if c.IsSet(flagTime) {
		if c.Uint64(flagTime) > math.MaxUint32 {
			return cli.Exit(fmt.Errorf("time %d overflows uint32", c.Uint64(flagTime)), 1)
		}
		opts.Time = uint32(c.Uint64(flagTime))
	}
	if c.IsSet(flagBits) {
		opts.Bits, err = parseBits(c.String(flagBits))
		if err != nil {
			return cli.Exit(err, 1)
		}
	}
	if c.Uint64(flagStartNonce) > math.MaxUint32 {
		return cli.Exit(fmt.Errorf("start nonce %d overflows uint32", c.Uint64(flagStartNonce)), 1)
	}

	block, err := chaincfg.BuildGenesis(opts)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx := context.Background()
	if timeout := c.Duration(flagTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ctx, cancel := withInterrupt(ctx, app.log)
	defer cancel()

	app.log.Info().Str("net", params.Name).
		Str("bits", fmt.Sprintf("%08x", opts.Bits)).
		Int("workers", c.Int(flagWorkers)).
		Msg("Searching genesis nonce")

	found, err := mineHeader(ctx, block.Header, uint32(c.Uint64(flagStartNonce)), c.Int(flagWorkers))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "nonce search failed"), 1)
	}

	valid := pow.CheckProofOfWork(&found.Hash, opts.Bits, params.Consensus.PowLimit) == nil
	fmt.Fprintf(app.out, "nonce:       %d\n", found.Nonce)
	fmt.Fprintf(app.out, "hash:        %s\n", found.Hash)
	fmt.Fprintf(app.out, "merkle root: %s\n", block.Header.MerkleRoot)
	fmt.Fprintf(app.out, "attempts:    %d\n", found.Attempts)
	fmt.Fprintf(app.out, "pow limit:   %t\n", valid)
	return nil
}

// parseBits parses a compact target given in hex, with or without 0x.
func parseBits(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	bits, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid bits %q", s)
	}
	return uint32(bits), nil
}
