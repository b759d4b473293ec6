/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"
	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
	"gitlab.com/quimeralabs/dogeposd/types/wire"
)

// GenesisOpts are the fields that differ between the genesis blocks of the
// networks.  Message is embedded verbatim; the networks use GenesisMessage.
type GenesisOpts struct {
	Message string
	Version int32
	Time    uint32
	Nonce   uint32
	Bits    uint32
	Reward  int64

	// RewardScript is the output script of the coinbase.  The committed
	// genesis blocks of every network use an empty script.
	RewardScript []byte
}

// genesisSignatureScript returns OP_0 <42> <message>.
func genesisSignatureScript(message string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisCoinbaseMarker).
		AddData([]byte(message)).
		Script()
}

// GenesisRewardScript returns the pay-to-pubkey script for
// GenesisRewardPubKey.  It is not part of any committed genesis block.
func GenesisRewardScript() ([]byte, error) {
	pubKey, err := hex.DecodeString(GenesisRewardPubKey)
	if err != nil {
		return nil, errors.Wrap(err, "bad genesis reward pubkey")
	}

	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// CreateGenesisBlock builds a genesis block holding a single coinbase
// transaction whose signature script embeds message.  The coinbase time is
// the block time.  The merkle root is the hash of that coinbase and the
// previous block hash is zero.
func CreateGenesisBlock(message string, rewardScript []byte, time, nonce, bits uint32,
	version int32, reward int64) (*wire.MsgBlock, error) {
	return BuildGenesis(GenesisOpts{
		Message:      message,
		Version:      version,
		Time:         time,
		Nonce:        nonce,
		Bits:         bits,
		Reward:       reward,
		RewardScript: rewardScript,
	})
}

// BuildGenesis is the option struct form of CreateGenesisBlock.
func BuildGenesis(opts GenesisOpts) (*wire.MsgBlock, error) {
	sigScript, err := genesisSignatureScript(opts.Message)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build genesis signature script")
	}

	coinbase := wire.NewMsgTx(wire.TxVersion, opts.Time)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	coinbase.AddTxOut(&wire.TxOut{
		Value:    opts.Reward,
		PkScript: append([]byte{}, opts.RewardScript...),
	})

	block := &wire.MsgBlock{}
	block.AddTransaction(coinbase)

	merkleRoot := block.CalcMerkleRoot()
	block.Header = *wire.NewBlockHeader(opts.Version, &chainhash.Hash{}, &merkleRoot,
		opts.Time, opts.Bits, opts.Nonce)

	return block, nil
}

// mustCreateGenesisBlock builds a hard-coded genesis block and panics on
// failure, which can only be caused by a broken build.
func mustCreateGenesisBlock(opts GenesisOpts) *wire.MsgBlock {
	block, err := BuildGenesis(opts)
	if err != nil {
		panic(err)
	}
	return block
}

// verifyGenesis asserts that the genesis block of p hashes to the expected
// genesis hash, commits to the shared merkle root and satisfies its own
// proof of work target.
func verifyGenesis(p *Params) error {
	block := p.GenesisBlock
	if block == nil || len(block.Transactions) != 1 {
		return newError(ErrGenesisIntegrity, p.Name, "genesis block must hold exactly one transaction")
	}

	merkleRoot := block.CalcMerkleRoot()
	if !merkleRoot.IsEqual(&block.Header.MerkleRoot) {
		return newError(ErrGenesisIntegrity, p.Name, "genesis header merkle root "+
			block.Header.MerkleRoot.String()+" does not commit to coinbase "+merkleRoot.String())
	}

	if p.skipGenesisCheck {
		log.Debug().Str("net", p.Name).Msg("genesis hash check skipped")
		return nil
	}

	expectedRoot := newHashFromStr(genesisMerkleRootStr)
	if !merkleRoot.IsEqual(expectedRoot) {
		return newError(ErrGenesisIntegrity, p.Name, "genesis merkle root "+
			merkleRoot.String()+" differs from "+expectedRoot.String())
	}

	hash := block.BlockHash()
	if !hash.IsEqual(&p.Consensus.GenesisBlockHash) {
		return newError(ErrGenesisIntegrity, p.Name, "genesis hash "+
			hash.String()+" differs from "+p.Consensus.GenesisBlockHash.String())
	}

	if err := pow.CheckProofOfWork(&hash, block.Header.Bits, p.Consensus.PowLimit); err != nil {
		return wrapError(ErrGenesisIntegrity, p.Name, err, "genesis block fails proof of work")
	}

	return nil
}
