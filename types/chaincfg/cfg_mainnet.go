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
	// mainPowLimitBits is mainPowLimit in compact form.
	mainPowLimitBits uint32 = 0x1e0fffff // target=00000fffff000000000000000000000000000000000000000000000000000000

	mainGenesisNonce uint32 = 999829
	mainGenesisHash         = "000002a056d75f0fb88ded1839127d3d995e2cf0010a1acfd734398518d37f83"
)

// NewMainNetParams builds the parameters of the main network.
func NewMainNetParams(opts ...Option) (*Params, error) {
	genesisHash := newHashFromStr(mainGenesisHash)
	checkpoints, err := NewCheckpoints(
		Checkpoint{Height: 0, Hash: genesisHash},
	)
	if err != nil {
		return nil, wrapError(ErrParameterConsistency, MainNetName, err, "bad checkpoints")
	}

	params := &Params{
		Name:             MainNetName,
		Net:              wire.MainNet,
		DefaultPort:      "41884",
		PruneAfterHeight: 100000,

		GenesisBlock: mustCreateGenesisBlock(GenesisOpts{
			Message: GenesisMessage,
			Version: 1,
			Time:    GenesisTime,
			Nonce:   mainGenesisNonce,
			Bits:    mainPowLimitBits,
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

			PowLimit:     new(big.Int).Set(mainPowLimit),
			PowLimitBits: mainPowLimitBits,
			PosLimitV1:   new(big.Int).Set(posLimit),
			PosLimitV2:   new(big.Int).Set(posLimit),

			TargetTimespan:  time.Hour,
			TargetSpacingV1: 2 * time.Minute,
			TargetSpacing:   2 * time.Minute,

			PowAllowMinDifficultyBlocks: false,
			PowNoRetargeting:            false,
			PosNoRetargeting:            false,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 29, // 95% of MinerConfirmationWindow
			MinerConfirmationWindow:       30,
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

			LastPOWBlock:       10000000,
			StakeTimestampMask: 0xf,
			CoinbaseMaturity:   24,
			StakeMinAge:        18 * time.Hour,

			MinimumChainWork: newBigFromHex("100001"),

			RequireStandard:               true,
			MiningRequiresPeers:           true,
			MineBlocksOnDemand:            false,
			DefaultConsistencyChecks:      false,
			TestnetToBeDeprecatedFieldRPC: false,
		},

		Checkpoints: checkpoints,
		ChainTxData: ChainTxData{
			Time:    int64(GenesisTime),
			TxCount: 0,
			TxRate:  0,
		},

		// Address encoding magics
		PubKeyHashAddrID: 30, // starts with D
		ScriptHashAddrID: 90,
		PrivateKeyID:     128,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		CashAddrPrefix: "dogepos",

		DNSSeeds: []DNSSeed{
			{"161.97.176.125", false},
			{"77.237.232.84", false},
			{"seeds.quimeralabs.org", false},
			{"seed1.quimeralabs.org", false},
			{"seed2.quimeralabs.org", false},
			{"seed3.quimeralabs.org", false},
			{"seed4.quimeralabs.org", false},
			{"seed5.quimeralabs.org", false},
			{"seed6.quimeralabs.org", false},
			{"seed7.quimeralabs.org", false},
			{"seed8.quimeralabs.org", false},
		},
		FixedSeeds: []string{
			"161.97.176.125:41884",
			"77.237.232.84:41884",
		},
	}

	return finishParams(params, opts)
}
