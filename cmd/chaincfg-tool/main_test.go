// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	mainGenesisHash   = "000002a056d75f0fb88ded1839127d3d995e2cf0010a1acfd734398518d37f83"
	genesisMerkleRoot = "8a5c4b32d5b72be3f66c944e6f402d223aa437c90263dd9450ad15175dd74d9d"
	testGenesisHash   = "00003522bd22dbda8b32c911eb058ff79d0d59d4156d6a6f66ddcfbbcb09a225"
	coinbaseHex       = "0100000080c21769010000000000000000000000000000000000000000000000000000000000000000ffffffff3a00012a3641204e657720436f6e6365707420696e2048796272696420426c6f636b636861696e202d205175696d657261204c6162732032303236ffffffff0100000000000000000000000000"
)

func runApp(args ...string) (string, error) {
	var out bytes.Buffer
	app := newCliApp(&App{}, &out)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"chaincfg-tool"}, args...))
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := runApp("list")
	require.NoError(t, err)
	assert.Contains(t, out, "main ")
	assert.Contains(t, out, "regtest ")
	assert.Contains(t, out, "genesis="+mainGenesisHash)
	assert.Contains(t, out, "genesis="+testGenesisHash)

	out, err = runApp("--skip-genesis-check", "list")
	require.NoError(t, err)
	assert.Contains(t, out, mainGenesisHash)

	_, err = runApp("--debuglevel", "loud", "list")
	assert.Error(t, err)
}

func TestShowCmd(t *testing.T) {
	out, err := runApp("show", "--net", "test")
	require.NoError(t, err)

	var view paramsView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, "test", view.Name)
	assert.Equal(t, "51884", view.DefaultPort)
	assert.Equal(t, testGenesisHash, view.Genesis.Hash)
	assert.Equal(t, "1f00ffff", view.Genesis.Bits)
	assert.Equal(t, uint32(2), view.Consensus.MinerConfirmationWindow)
	assert.Equal(t, int64(2), view.Consensus.AdjustmentInterval)
	assert.Equal(t, "043587cf", view.Prefixes.HDPublic)
	assert.Equal(t, "dpstest", view.CashAddrPrefix)
	require.Len(t, view.Consensus.Deployments, 1)
	assert.Equal(t, "testdummy", view.Consensus.Deployments[0].Name)

	_, err = runApp("show", "--net", "testnet3")
	assert.Error(t, err)
}

func TestGenesisCmd(t *testing.T) {
	out, err := runApp("genesis", "--net", "main", "--hex", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "hash:        "+mainGenesisHash)
	assert.Contains(t, out, "coinbase:    "+coinbaseHex)
	assert.Contains(t, out, "nonce:       999829")
	assert.Contains(t, out, "coinbase proof: 0 hashes, verified\n")
	assert.Contains(t, out, "block:       ")
	assert.Contains(t, out, "MerkleRoot")
}

func TestCheckpointsCmd(t *testing.T) {
	out, err := runApp("checkpoints", "--net", "main", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "height,hash\n0,"+mainGenesisHash+"\n", out)

	out, err = runApp("checkpoints", "--net", "main")
	require.NoError(t, err)
	assert.Equal(t, "0 "+mainGenesisHash+"\n", out)

	_, err = runApp("checkpoints", "--net", "main", "--format", "json")
	assert.Error(t, err)
}

func TestCheckpointsCmdVerifyFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "chaincfg-tool")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	good := filepath.Join(dir, "good.csv")
	require.NoError(t, ioutil.WriteFile(good,
		[]byte("height,hash\n0,"+mainGenesisHash+"\n500,"+testGenesisHash+"\n"), 0644))

	out, err := runApp("checkpoints", "--net", "main", "--file", good)
	require.NoError(t, err)
	assert.Equal(t, "2 checkpoints agree with main\n", out)

	_, err = runApp("checkpoints", "--net", "test", "--file", good)
	assert.Error(t, err)

	_, err = runApp("checkpoints", "--net", "main", "--file", filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestMineCmd(t *testing.T) {
	out, err := runApp("mine", "--net", "regtest", "--bits", "0x207fffff", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "nonce:")
	assert.Contains(t, out, "pow limit:   false")
	assert.Contains(t, out, "merkle root: "+genesisMerkleRoot)

	out, err = runApp("mine", "--net", "regtest", "--bits", "207fffff",
		"--time", "4294967295")
	require.NoError(t, err)
	assert.NotContains(t, out, genesisMerkleRoot)

	_, err = runApp("mine", "--bits", "zz")
	assert.Error(t, err)

	_, err = runApp("mine", "--start-nonce", "4294967296")
	assert.Error(t, err)

	out, err = runApp("mine", "--bits", "207fffff", "--time", "4294967296")
	assert.Error(t, err)
	assert.Empty(t, out)
}
