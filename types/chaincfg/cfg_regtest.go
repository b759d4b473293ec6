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

// regTestGenesisNonce does not satisfy testPowLimitBits.  The regression test
// genesis is accepted by construction rather than by work, so its hash is taken
// from the built block.
const regTestGenesisNonce uint32 = 92159

// NewRegTestParams builds the parameters of the regression test network.
// Genesis verification is skipped unless WithSkipGenesisVerification(false)
// is passed.  This is the only profile whose deployment windows may be
// overridden after construction.
func NewRegTestParams(opts ...Option) (*Params, error) {
	genesis := mustCreateGenesisBlock(GenesisOpts{
		Message: GenesisMessage,
		Version: 1,
		Time:    GenesisTime,
		Nonce:   regTestGenesisNonce,
		Bits:    testPowLimitBits,
		Reward:  0,
	})

	params := &Params{
		Name:             RegTestName,
		Net:              wire.RegTest,
		DefaultPort:      "35714",
		PruneAfterHeight: 100000,

		GenesisBlock: genesis,

		Consensus: ConsensusParams{
			GenesisBlockHash: genesis.BlockHash(),
			MaxReorgDepth:    50,

			MajorityEnforceBlockUpgrade: 51,
			MajorityRejectBlockOutdated: 75,
			MajorityWindow:              100,

			BIP34Height: -1,
			BIP34Hash:   chainhash.Hash{},

			PowLimit:     new(big.Int).Set(testPowLimit),
			PowLimitBits: testPowLimitBits,
			PosLimitV1:   new(big.Int).Set(posLimit),
			PosLimitV2:   new(big.Int).Set(posLimit),

			TargetTimespan:  6 * time.Minute,
			TargetSpacingV1: 64 * time.Second,
			TargetSpacing:   3 * time.Minute,

			PowAllowMinDifficultyBlocks: true,
			PowNoRetargeting:            true,
			PosNoRetargeting:            true,

			RuleChangeActivationThreshold: 108, // 75% for testchains
			MinerConfirmationWindow:       144, // Faster than normal for regtest (144 instead of 2016)
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

			LastPOWBlock:       1000,
			StakeTimestampMask: 0xf,
			CoinbaseMaturity:   10,
			StakeMinAge:        time.Hour,

			MinimumChainWork: newBigFromHex("0"),

			RequireStandard:               false,
			MiningRequiresPeers:           false,
			MineBlocksOnDemand:            true,
			DefaultConsistencyChecks:      true,
			TestnetToBeDeprecatedFieldRPC: false,
		},

		Checkpoints: mustEmptyCheckpoints(),

		// Address encoding magics
		PubKeyHashAddrID: 0x6f, // starts with m or n
		ScriptHashAddrID: 0xc4, // starts with 2
		PrivateKeyID:     0xb2,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x20, 0xb9, 0x00},
		HDPublicKeyID:  [4]byte{0x04, 0x20, 0xbd, 0x3a},

		CashAddrPrefix: "dpsreg",

		DNSSeeds:   []DNSSeed{},
		FixedSeeds: []string{},

		skipGenesisCheck:   true,
		mutableDeployments: true,
	}

	return finishParams(params, opts)
}

func mustEmptyCheckpoints() *Checkpoints {
	checkpoints, err := NewCheckpoints()
	if err != nil {
		panic(err)
	}
	return checkpoints
}
