// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
)

type paramsView struct {
	Name             string                   `yaml:"name"`
	Magic            string                   `yaml:"magic"`
	DefaultPort      string                   `yaml:"default_port"`
	PruneAfterHeight uint64                   `yaml:"prune_after_height"`
	Genesis          genesisView              `yaml:"genesis"`
	Consensus        consensusView            `yaml:"consensus"`
	Checkpoints      []chaincfg.CheckpointRow `yaml:"checkpoints"`
	ChainTxData      chaincfg.ChainTxData     `yaml:"chain_tx_data"`
	Prefixes         prefixView               `yaml:"base58_prefixes"`
	CashAddrPrefix   string                   `yaml:"cashaddr_prefix"`
	DNSSeeds         []string                 `yaml:"dns_seeds"`
	FixedSeeds       []string                 `yaml:"fixed_seeds"`
}

type genesisView struct {
	Hash         string `yaml:"hash"`
	MerkleRoot   string `yaml:"merkle_root"`
	Time         uint32 `yaml:"time"`
	Nonce        uint32 `yaml:"nonce"`
	Bits         string `yaml:"bits"`
	Work         string `yaml:"work"`
	CheckSkipped bool   `yaml:"check_skipped"`
}

type deploymentView struct {
	Name       string `yaml:"name"`
	Bit        uint8  `yaml:"bit"`
	StartTime  int64  `yaml:"start_time"`
	ExpireTime int64  `yaml:"expire_time"`
}

type consensusView struct {
	PowLimit                      string           `yaml:"pow_limit"`
	PowLimitBits                  string           `yaml:"pow_limit_bits"`
	PosLimitV1                    string           `yaml:"pos_limit_v1"`
	PosLimitV2                    string           `yaml:"pos_limit_v2"`
	TargetTimespan                string           `yaml:"target_timespan"`
	TargetSpacingV1               string           `yaml:"target_spacing_v1"`
	TargetSpacing                 string           `yaml:"target_spacing"`
	AdjustmentInterval            int64            `yaml:"difficulty_adjustment_interval"`
	PowAllowMinDifficultyBlocks   bool             `yaml:"pow_allow_min_difficulty_blocks"`
	PowNoRetargeting              bool             `yaml:"pow_no_retargeting"`
	PosNoRetargeting              bool             `yaml:"pos_no_retargeting"`
	RuleChangeActivationThreshold uint32           `yaml:"rule_change_activation_threshold"`
	MinerConfirmationWindow       uint32           `yaml:"miner_confirmation_window"`
	Deployments                   []deploymentView `yaml:"deployments"`
	MaxReorgDepth                 int32            `yaml:"max_reorg_depth"`
	LastPOWBlock                  int32            `yaml:"last_pow_block"`
	CoinbaseMaturity              uint16           `yaml:"coinbase_maturity"`
	StakeMinAge                   string           `yaml:"stake_min_age"`
	StakeTimestampMask            uint32           `yaml:"stake_timestamp_mask"`
	MinimumChainWork              string           `yaml:"minimum_chain_work"`
	ProtocolV1RetargetingFixed    int64            `yaml:"protocol_v1_retargeting_fixed_time"`
	ProtocolV2Time                int64            `yaml:"protocol_v2_time"`
	ProtocolV3Time                int64            `yaml:"protocol_v3_time"`
}

type prefixView struct {
	PubKeyHash string `yaml:"pubkey_hash"`
	ScriptHash string `yaml:"script_hash"`
	PrivateKey string `yaml:"private_key"`
	HDPublic   string `yaml:"hd_public"`
	HDPrivate  string `yaml:"hd_private"`
}

func newParamsView(p *chaincfg.Params) paramsView {
	header := p.GenesisBlock.Header
	cons := p.Consensus

	deployments := make([]deploymentView, 0, chaincfg.DefinedDeployments)
	for id := 0; id < chaincfg.DefinedDeployments; id++ {
		d, _ := p.Deployment(id)
		deployments = append(deployments, deploymentView{
			Name:       chaincfg.DeploymentName(id),
			Bit:        d.BitNumber,
			StartTime:  d.StartTime,
			ExpireTime: d.ExpireTime,
		})
	}

	seeds := make([]string, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		seeds = append(seeds, seed.String())
	}

	prefixes := p.Base58Prefixes()
	return paramsView{
		Name:             p.Name,
		Magic:            fmt.Sprintf("%08x", uint32(p.Net)),
		DefaultPort:      p.DefaultPort,
		PruneAfterHeight: p.PruneAfterHeight,
		Genesis: genesisView{
			Hash:         p.GenesisHash().String(),
			MerkleRoot:   header.MerkleRoot.String(),
			Time:         header.Timestamp,
			Nonce:        header.Nonce,
			Bits:         fmt.Sprintf("%08x", header.Bits),
			Work:         pow.CalcWork(header.Bits).String(),
			CheckSkipped: p.GenesisCheckSkipped(),
		},
		Consensus: consensusView{
			PowLimit:                      fmt.Sprintf("%064x", cons.PowLimit),
			PowLimitBits:                  fmt.Sprintf("%08x", cons.PowLimitBits),
			PosLimitV1:                    fmt.Sprintf("%064x", cons.PosLimitV1),
			PosLimitV2:                    fmt.Sprintf("%064x", cons.PosLimitV2),
			TargetTimespan:                cons.TargetTimespan.String(),
			TargetSpacingV1:               cons.TargetSpacingV1.String(),
			TargetSpacing:                 cons.TargetSpacing.String(),
			AdjustmentInterval:            cons.DifficultyAdjustmentInterval(),
			PowAllowMinDifficultyBlocks:   cons.PowAllowMinDifficultyBlocks,
			PowNoRetargeting:              cons.PowNoRetargeting,
			PosNoRetargeting:              cons.PosNoRetargeting,
			RuleChangeActivationThreshold: cons.RuleChangeActivationThreshold,
			MinerConfirmationWindow:       cons.MinerConfirmationWindow,
			Deployments:                   deployments,
			MaxReorgDepth:                 cons.MaxReorgDepth,
			LastPOWBlock:                  cons.LastPOWBlock,
			CoinbaseMaturity:              cons.CoinbaseMaturity,
			StakeMinAge:                   cons.StakeMinAge.String(),
			StakeTimestampMask:            cons.StakeTimestampMask,
			MinimumChainWork:              fmt.Sprintf("%x", cons.MinimumChainWork),
			ProtocolV1RetargetingFixed:    cons.ProtocolV1RetargetingFixedTime,
			ProtocolV2Time:                cons.ProtocolV2Time,
			ProtocolV3Time:                cons.ProtocolV3Time,
		},
		Checkpoints: p.Checkpoints.Rows(),
		ChainTxData: p.ChainTxData,
		Prefixes: prefixView{
			PubKeyHash: fmt.Sprintf("%x", prefixes[0]),
			ScriptHash: fmt.Sprintf("%x", prefixes[1]),
			PrivateKey: fmt.Sprintf("%x", prefixes[2]),
			HDPublic:   fmt.Sprintf("%x", prefixes[3]),
			HDPrivate:  fmt.Sprintf("%x", prefixes[4]),
		},
		CashAddrPrefix: p.CashAddrPrefix,
		DNSSeeds:       seeds,
		FixedSeeds:     p.FixedSeeds,
	}
}
