/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// GenesisMessage is the text embedded in the coinbase of every network
	// genesis block.
	GenesisMessage = "A New Concept in Hybrid Blockchain - Quimera Labs 2026"

	// GenesisRewardPubKey is the uncompressed public key the genesis reward
	// was meant to pay.  The committed genesis output script is empty, so
	// this key is informational; see GenesisRewardScript.
	GenesisRewardPubKey = "04bc38d4c1a11ba2d8f06f31f5def70e438596b0814a530a21a9a18608bf843f99ae1e61af3f97a55a878a78b7ae5cec14ec69c91acf371ffbd0350f6e85677f0f"

	// GenesisTime is the header and coinbase timestamp shared by all networks.
	GenesisTime uint32 = 1763164800 // Sat 15 Nov 00:00:00 UTC 2025

	// genesisCoinbaseMarker is the script number pushed after OP_0 in the
	// genesis coinbase signature script.
	genesisCoinbaseMarker = 42

	// genesisMerkleRootStr is the merkle root of every genesis block.  It is
	// the same for all networks because the coinbase message, reward script,
	// reward, version and time are shared.
	genesisMerkleRootStr = "8a5c4b32d5b72be3f66c944e6f402d223aa437c90263dd9450ad15175dd74d9d"
)

// Retargeting era switch times shared by all networks.
const (
	protocolV1RetargetingFixedTime int64 = 1763164800
	protocolV2Time                 int64 = 1763164801
	protocolV3Time                 int64 = 1763164802
)

// Test dummy deployment window shared by all networks.
const (
	testDummyBit       = 28
	testDummyStartTime = 1704067201 // January 1, 2024
	testDummyTimeout   = 1735603201 // December 31, 2024
)
