// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JAX.Network developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"gitlab.com/quimeralabs/dogeposd/types/chainhash"
	"gitlab.com/quimeralabs/dogeposd/types/wire"
)

const (
	// testPowLimitBits is testPowLimit in compact form.
	testPowLimitBits uint32 = 0x1f00ffff // target=0000ffff00000000000000000000000000000000000000000000000000000000

	testGenesisNonce uint32 = 127143
	testGenesisHash         = "00003522bd22dbda8b32c911eb058ff79d0d59d4156d6a6f66ddcfbbcb09a225"
)

// NewTestNetParams builds the parameters of the public test network.
func NewTestNetParams(opts ...Option) (*Params, error) {
	genesisHash := newHashFromStr(testGenesisHash)
	checkpoints, err := NewCheckpoints(
		Checkpoint{Height: 0, Hash: genesisHash},
	)
	if err != nil {
		return nil, wrapError(ErrParameterConsistency, TestNetName, err, "bad checkpoints")
	}

	params := &Params{
		Name:             TestNetName,
		Net:              wire.TestNet,
		DefaultPort:      "51884",
		PruneAfterHeight: 1000,

		GenesisBlock: mustCreateGenesisBlock(GenesisOpts{
			Message: GenesisMessage,
			Version: 1,
			Time:    GenesisTime,
			Nonce:   testGenesisNonce,
			Bits:    testPowLimitBits,
			Reward:  0,
		}),

		Consensus: ConsensusParams{
			GenesisBlockHash: *genesisHash,
			MaxReorgDepth:    500,

			MajorityEnforceBlockUpgrade: 750,
			MajorityRejectBlockOutdated: 950,
			MajorityWindow:              1000,

			BIP34Height: -1,
			BIP34Hash:   chainhash.Hash{},

			PowLimit:     new(big.Int).Set(testPowLimit),
			PowLimitBits: testPowLimitBits,
			PosLimitV1:   new(big.Int).Set(posLimit),
			PosLimitV2:   new(big.Int).Set(posLimit),

			TargetTimespan:  6 * time.Minute,
			TargetSpacingV1: 3 * time.Minute,
			TargetSpacing:   3 * time.Minute,

			PowAllowMinDifficultyBlocks: true,
			PowNoRetargeting:            false,
			PosNoRetargeting:            false,

			RuleChangeActivationThreshold: 2, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					BitNumber:  testDummyBit,
					StartTime:  testDummyStartTime,
					ExpireTime: testDummyTimeout,
				},
			},

			ProtocolV1RetargetingFixedTime: protocolV1RetargetingFixedTime,
			ProtocolV2Time:                 protocolV2Time,
			ProtocolV3Time:                 protocolV3Time,

			LastPOWBlock:       0x7fffffff,
			StakeTimestampMask: 0xf,
			CoinbaseMaturity:   10,
			StakeMinAge:        8 * time.Hour,

			MinimumChainWork: newBigFromHex("100001"),

			RequireStandard:               false,
			MiningRequiresPeers:           true,
			MineBlocksOnDemand:            false,
			DefaultConsistencyChecks:      false,
			TestnetToBeDeprecatedFieldRPC: true,
		},

		Checkpoints: checkpoints,
		ChainTxData: ChainTxData{
			Time:    int64(GenesisTime),
			TxCount: 0,
			TxRate:  0,
		},

		// Address encoding magics
		PubKeyHashAddrID: 51,
		ScriptHashAddrID: 50,
		PrivateKeyID:     239,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		CashAddrPrefix: "dpstest",

		DNSSeeds:   []DNSSeed{},
		FixedSeeds: []string{},
	}

	return finishParams(params, opts)
}
