/*
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"gitlab.com/quimeralabs/dogeposd/types/pow"
)

// maxDeploymentBit is the highest version bit a deployment may vote with.
const maxDeploymentBit = 28

// Option tunes a profile while it is being constructed.
type Option func(*profileOptions)

type deploymentWindow struct {
	start   int64
	timeout int64
}

type profileOptions struct {
	skipGenesisCheck bool
	deployments      map[int]deploymentWindow
}

// WithSkipGenesisVerification turns the genesis hash assertion off or on.
// It is on by default for every network except regtest.
func WithSkipGenesisVerification(skip bool) Option {
	return func(o *profileOptions) {
		o.skipGenesisCheck = skip
	}
}

// WithDeployment replaces the voting window of a deployment before the
// profile is validated.
func WithDeployment(id int, start, timeout int64) Option {
	return func(o *profileOptions) {
		if o.deployments == nil {
			o.deployments = make(map[int]deploymentWindow)
		}
		o.deployments[id] = deploymentWindow{start: start, timeout: timeout}
	}
}

// finishParams applies opts to a freshly built profile, then validates it and
// verifies its genesis block.
func finishParams(p *Params, opts []Option) (*Params, error) {
	o := profileOptions{skipGenesisCheck: p.skipGenesisCheck}
	for _, opt := range opts {
		opt(&o)
	}
	p.skipGenesisCheck = o.skipGenesisCheck

	for id, window := range o.deployments {
		if id < 0 || id >= DefinedDeployments {
			return nil, newError(ErrParameterConsistency, p.Name,
				fmt.Sprintf("unknown deployment id %d", id))
		}
		p.Consensus.Deployments[id].StartTime = window.start
		p.Consensus.Deployments[id].ExpireTime = window.timeout
	}

	if err := validateParams(p); err != nil {
		return nil, err
	}
	if err := verifyGenesis(p); err != nil {
		return nil, err
	}
	if err := verifyGenesisCheckpoint(p); err != nil {
		return nil, err
	}

	log.Debug().Str("net", p.Name).Str("genesis", p.Consensus.GenesisBlockHash.String()).
		Msg("chain parameters constructed")
	return p, nil
}

// verifyGenesisCheckpoint asserts a height zero checkpoint names the genesis
// block.
func verifyGenesisCheckpoint(p *Params) error {
	hash, ok := p.Checkpoints.Lookup(0)
	if !ok {
		return nil
	}

	genesisHash := p.GenesisHash()
	if !hash.IsEqual(genesisHash) {
		return newError(ErrGenesisIntegrity, p.Name, "checkpoint at height 0 is "+
			hash.String()+", genesis is "+genesisHash.String())
	}
	return nil
}

// validateParams checks the internal consistency of a single profile.
func validateParams(p *Params) error {
	checks := []func(*Params) error{
		validateDeployments,
		validateTiming,
		validateMajority,
		validateEpochs,
		validateLimits,
		validateNetwork,
	}

	for _, check := range checks {
		if err := check(p); err != nil {
			return newError(ErrParameterConsistency, p.Name, err.Error())
		}
	}
	return nil
}

func validateDeployments(p *Params) error {
	c := &p.Consensus
	if c.MinerConfirmationWindow == 0 {
		return fmt.Errorf("miner confirmation window is zero")
	}
	if c.RuleChangeActivationThreshold > c.MinerConfirmationWindow {
		return fmt.Errorf("activation threshold %d exceeds confirmation window %d",
			c.RuleChangeActivationThreshold, c.MinerConfirmationWindow)
	}

	seen := make(map[uint8]int, DefinedDeployments)
	for id, d := range c.Deployments {
		if d.BitNumber > maxDeploymentBit {
			return fmt.Errorf("deployment %s uses bit %d, max is %d",
				DeploymentName(id), d.BitNumber, maxDeploymentBit)
		}
		if d.ExpireTime <= d.StartTime {
			return fmt.Errorf("deployment %s times out at %d, not after its start %d",
				DeploymentName(id), d.ExpireTime, d.StartTime)
		}
		if other, ok := seen[d.BitNumber]; ok {
			return fmt.Errorf("deployments %s and %s share bit %d",
				DeploymentName(other), DeploymentName(id), d.BitNumber)
		}
		seen[d.BitNumber] = id
	}
	return nil
}

func validateTiming(p *Params) error {
	c := &p.Consensus
	if c.TargetSpacing <= 0 || c.TargetTimespan <= 0 {
		return fmt.Errorf("target spacing %s and timespan %s must be positive",
			c.TargetSpacing, c.TargetTimespan)
	}
	if c.TargetTimespan%c.TargetSpacing != 0 {
		return fmt.Errorf("target timespan %s is not a multiple of spacing %s",
			c.TargetTimespan, c.TargetSpacing)
	}
	if !c.PowNoRetargeting && int64(c.MinerConfirmationWindow) != c.DifficultyAdjustmentInterval() {
		return fmt.Errorf("confirmation window %d differs from retarget interval %d",
			c.MinerConfirmationWindow, c.DifficultyAdjustmentInterval())
	}
	return nil
}

func validateMajority(p *Params) error {
	c := &p.Consensus
	if c.MajorityEnforceBlockUpgrade <= 0 ||
		c.MajorityEnforceBlockUpgrade > c.MajorityRejectBlockOutdated ||
		c.MajorityRejectBlockOutdated > c.MajorityWindow {
		return fmt.Errorf("majority rules %d/%d/%d are not ordered",
			c.MajorityEnforceBlockUpgrade, c.MajorityRejectBlockOutdated, c.MajorityWindow)
	}
	return nil
}

func validateEpochs(p *Params) error {
	c := &p.Consensus
	if c.ProtocolV1RetargetingFixedTime > c.ProtocolV2Time || c.ProtocolV2Time > c.ProtocolV3Time {
		return fmt.Errorf("protocol switch times %d, %d, %d are decreasing",
			c.ProtocolV1RetargetingFixedTime, c.ProtocolV2Time, c.ProtocolV3Time)
	}
	return nil
}

func validateLimits(p *Params) error {
	c := &p.Consensus
	limits := []struct {
		name  string
		limit *big.Int
	}{
		{"pow limit", c.PowLimit},
		{"pos limit v1", c.PosLimitV1},
		{"pos limit v2", c.PosLimitV2},
	}
	for _, l := range limits {
		if l.limit == nil || l.limit.Sign() <= 0 {
			return fmt.Errorf("%s is not positive", l.name)
		}
	}

	if p.GenesisBlock != nil {
		target := pow.CompactToBig(p.GenesisBlock.Header.Bits)
		if target.Cmp(c.PowLimit) > 0 {
			return fmt.Errorf("genesis target %064x exceeds pow limit %064x", target, c.PowLimit)
		}
	}

	span := uint64(c.StakeTimestampMask) + 1
	if span&(span-1) != 0 {
		return fmt.Errorf("stake timestamp mask %#x is not a power of two minus one",
			c.StakeTimestampMask)
	}
	return nil
}

func validateNetwork(p *Params) error {
	port, err := strconv.ParseUint(p.DefaultPort, 10, 16)
	if err != nil || port == 0 {
		return fmt.Errorf("bad default port %q", p.DefaultPort)
	}

	if p.CashAddrPrefix == "" || strings.ToLower(p.CashAddrPrefix) != p.CashAddrPrefix {
		return fmt.Errorf("cashaddr prefix %q must be non-empty lower case", p.CashAddrPrefix)
	}

	for _, seed := range p.DNSSeeds {
		if !isValidHost(seed.Host) {
			return fmt.Errorf("bad dns seed %q", seed.Host)
		}
	}

	for _, seed := range p.FixedSeeds {
		host, portStr, err := net.SplitHostPort(seed)
		if err != nil {
			return fmt.Errorf("bad fixed seed %q: %v", seed, err)
		}
		if port, err := strconv.ParseUint(portStr, 10, 16); err != nil || port == 0 {
			return fmt.Errorf("bad fixed seed port %q", seed)
		}
		if !isValidHost(host) {
			return fmt.Errorf("bad fixed seed host %q", seed)
		}
	}
	return nil
}

// isValidHost reports whether host is an IP literal or a domain name.
func isValidHost(host string) bool {
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	_, ok := dns.IsDomainName(host)
	return ok
}

// validateRegistry checks that no two profiles share a network identifier.
func validateRegistry(profiles []*Params) error {
	type key struct {
		kind  string
		value string
	}

	owners := make(map[key]string)
	claim := func(p *Params, kind, value string) error {
		k := key{kind: kind, value: value}
		if owner, ok := owners[k]; ok {
			return newError(ErrParameterConsistency, p.Name,
				fmt.Sprintf("%s %s is also used by %s", kind, value, owner))
		}
		owners[k] = p.Name
		return nil
	}

	for _, p := range profiles {
		if err := claim(p, "name", p.Name); err != nil {
			return err
		}
		if err := claim(p, "magic", fmt.Sprintf("%08x", uint32(p.Net))); err != nil {
			return err
		}
		if err := claim(p, "port", p.DefaultPort); err != nil {
			return err
		}
		if err := claim(p, "cashaddr prefix", p.CashAddrPrefix); err != nil {
			return err
		}
		for i, prefix := range p.Base58Prefixes() {
			if err := claim(p, base58PrefixNames[i]+" prefix", fmt.Sprintf("%x", prefix)); err != nil {
				return err
			}
		}
	}
	return nil
}
