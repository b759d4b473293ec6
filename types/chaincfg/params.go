// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
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

// Network names accepted by the registry.
const (
	MainNetName = "main"
	TestNetName = "test"
	RegTestName = "regtest"
)

// These variables are the chain proof-of-work and proof-of-stake limit
// parameters for each default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testPowLimit is the highest proof of work value a block can have for
	// the test and regression test networks.  It is the value 2^240 - 1.
	testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)

	// posLimit is the highest proof of stake target of every network,
	// 2^236 - 1.
	posLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime int64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime int64
}

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// deploymentNames maps deployment IDs to the names used on the command line.
var deploymentNames = map[int]string{
	DeploymentTestDummy: "testdummy",
}

// DeploymentByName returns the deployment ID registered under name.
func DeploymentByName(name string) (int, bool) {
	for id, n := range deploymentNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// DeploymentName returns the command line name of a deployment ID.
func DeploymentName(id int) string {
	return deploymentNames[id]
}

// ConsensusParams holds every consensus rule of one network.  It is
// immutable once the profile holding it has been constructed, except for the
// deployment windows of the regression test network.
type ConsensusParams struct {
	// GenesisBlockHash is the expected hash of the genesis block.
	GenesisBlockHash chainhash.Hash

	// MaxReorgDepth is the deepest reorganisation the node accepts.
	MaxReorgDepth int32

	// Block version supermajority rules.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP34Height and BIP34Hash mark the block where height-in-coinbase
	// became mandatory.  A negative height means never.
	BIP34Height int32
	BIP34Hash   chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimitV1 and PosLimitV2 are the highest allowed proof of stake
	// targets before and after the second protocol era.
	PosLimitV1 *big.Int
	PosLimitV2 *big.Int

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetSpacingV1 is the block spacing before the retargeting fix.
	TargetSpacingV1 time.Duration

	// TargetSpacing is the desired amount of time to generate each block.
	TargetSpacing time.Duration

	// PowAllowMinDifficultyBlocks defines whether the network should allow
	// min-difficulty blocks after a long gap.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting and PosNoRetargeting disable difficulty adjustment
	// for the respective block kinds.
	PowNoRetargeting bool
	PosNoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// Protocol era switch times in unix seconds.  They are non-decreasing.
	ProtocolV1RetargetingFixedTime int64
	ProtocolV2Time                 int64
	ProtocolV3Time                 int64

	// LastPOWBlock is the last height a proof of work block is accepted at.
	LastPOWBlock int32

	// StakeTimestampMask snaps stake timestamps to a coarse grid.  Mask+1
	// is a power of two.
	StakeTimestampMask uint32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16

	// StakeMinAge is the minimum age of a coin before it can stake.
	StakeMinAge time.Duration

	// MinimumChainWork is the lower bound of work the node syncs to.
	MinimumChainWork *big.Int

	// Policy defaults.
	RequireStandard               bool
	MiningRequiresPeers           bool
	MineBlocksOnDemand            bool
	DefaultConsistencyChecks      bool
	TestnetToBeDeprecatedFieldRPC bool
}

// DifficultyAdjustmentInterval returns the number of blocks between
// proof of work retargets.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	if c.TargetSpacing <= 0 {
		return 0
	}
	return int64(c.TargetTimespan / c.TargetSpacing)
}

// Params defines a network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// PruneAfterHeight is the height below which blocks are never pruned.
	PruneAfterHeight uint64

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// Consensus holds the consensus rules of the network.
	Consensus ConsensusParams

	// Checkpoints ordered from oldest to newest.
	Checkpoints *Checkpoints
	ChainTxData ChainTxData

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// CashAddrPrefix is the human-readable part of cashaddr addresses.
	CashAddrPrefix string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are host:port peers used when DNS seeding yields nothing.
	FixedSeeds []string

	// skipGenesisCheck disables the genesis hash assertion.
	skipGenesisCheck bool

	// mutableDeployments marks the one profile whose deployment windows
	// may be overridden after construction.
	mutableDeployments bool
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() *chainhash.Hash {
	hash := p.GenesisBlock.BlockHash()
	return &hash
}

// Deployment returns the deployment with the given ID.
func (p *Params) Deployment(id int) (ConsensusDeployment, bool) {
	if id < 0 || id >= DefinedDeployments {
		return ConsensusDeployment{}, false
	}
	return p.Consensus.Deployments[id], true
}

// IsRegTest reports whether the profile accepts deployment overrides.
func (p *Params) IsRegTest() bool {
	return p.mutableDeployments
}

// GenesisCheckSkipped reports whether the genesis hash assertion was
// disabled for this profile.
func (p *Params) GenesisCheckSkipped() bool {
	return p.skipGenesisCheck
}

// Base58Prefixes returns the five address encoding prefixes in a fixed
// order: pubkey hash, script hash, private key, extended public key and
// extended private key.
func (p *Params) Base58Prefixes() [5][]byte {
	return [5][]byte{
		{p.PubKeyHashAddrID},
		{p.ScriptHashAddrID},
		{p.PrivateKeyID},
		p.HDPublicKeyID[:],
		p.HDPrivateKeyID[:],
	}
}

// base58PrefixNames names the entries returned by Base58Prefixes.
var base58PrefixNames = [5]string{
	"pubkey hash address", "script hash address", "private key",
	"extended public key", "extended private key",
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// newBigFromHex parses a hard-coded hex number and panics on failure.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hard-coded hex number " + hexStr)
	}
	return n
}
