/*
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySelection(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{MainNetName, TestNetName, RegTestName}, r.Networks())

	_, err = r.Active()
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrPrecondition))
	assert.Panics(t, func() { r.MustActive() })

	require.NoError(t, r.Select(MainNetName))
	active, err := r.Active()
	require.NoError(t, err)
	assert.Equal(t, MainNetName, active.Name)

	err = r.Select("mainnet")
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrUnknownNetwork))

	// A failed selection keeps the previous profile.
	assert.Equal(t, MainNetName, r.MustActive().Name)

	require.NoError(t, r.Select(RegTestName))
	assert.Equal(t, RegTestName, r.MustActive().Name)
}

func TestRegistryGet(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	for _, name := range r.Networks() {
		params, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, params.Name)
	}

	_, err = r.Get("simnet")
	assert.True(t, IsErrorCode(err, ErrUnknownNetwork))
}

func TestRegistryOverrideRegtestDeployment(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	main, err := r.Get(MainNetName)
	require.NoError(t, err)
	test, err := r.Get(TestNetName)
	require.NoError(t, err)
	mainBefore := main.Consensus.Deployments
	testBefore := test.Consensus.Deployments

	require.NoError(t, r.OverrideRegtestDeployment(DeploymentTestDummy, 0, 999999999999))

	reg, err := r.Get(RegTestName)
	require.NoError(t, err)
	d, ok := reg.Deployment(DeploymentTestDummy)
	require.True(t, ok)
	assert.Equal(t, int64(0), d.StartTime)
	assert.Equal(t, int64(999999999999), d.ExpireTime)

	assert.Equal(t, mainBefore, main.Consensus.Deployments)
	assert.Equal(t, testBefore, test.Consensus.Deployments)

	err = r.OverrideRegtestDeployment(DeploymentTestDummy, 10, 10)
	assert.True(t, IsErrorCode(err, ErrParameterConsistency))
	err = r.OverrideRegtestDeployment(DefinedDeployments, 0, 10)
	assert.True(t, IsErrorCode(err, ErrParameterConsistency))

	// Rejected overrides leave the last good window in place.
	d, _ = reg.Deployment(DeploymentTestDummy)
	assert.Equal(t, int64(999999999999), d.ExpireTime)
}

func TestRegistryLimitsAreNotShared(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	main, err := r.Get(MainNetName)
	require.NoError(t, err)
	test, err := r.Get(TestNetName)
	require.NoError(t, err)
	reg, err := r.Get(RegTestName)
	require.NoError(t, err)

	main.Consensus.PosLimitV1.SetInt64(1)
	main.Consensus.PosLimitV2.SetInt64(2)
	test.Consensus.PowLimit.SetInt64(3)

	assert.Equal(t, 0, test.Consensus.PosLimitV1.Cmp(posLimit))
	assert.Equal(t, 0, reg.Consensus.PosLimitV2.Cmp(posLimit))
	assert.Equal(t, 0, reg.Consensus.PowLimit.Cmp(testPowLimit))
	assert.Equal(t, 0, main.Consensus.PosLimitV1.Cmp(big.NewInt(1)))

	fresh, err := NewMainNetParams()
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Consensus.PosLimitV1.Cmp(posLimit))
	assert.Equal(t, 0, fresh.Consensus.PowLimit.Cmp(mainPowLimit))
}

func TestRegistryWithNetworkOptions(t *testing.T) {
	_, err := NewRegistry(WithNetworkOptions(TestNetName,
		WithDeployment(DeploymentTestDummy, 5, 1)))
	require.Error(t, err)
	assert.True(t, IsErrorCode(err, ErrParameterConsistency))

	_, err = NewRegistry(WithNetworkOptions(RegTestName, WithSkipGenesisVerification(false)))
	assert.True(t, IsErrorCode(err, ErrGenesisIntegrity))
}

func TestRegistryConcurrentActive(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, r.Select(TestNetName))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				params, err := r.Active()
				if assert.NoError(t, err) {
					assert.Equal(t, TestNetName, params.Name)
				}
			}
		}()
	}
	wg.Wait()
}

func TestProcessRegistry(t *testing.T) {
	params, err := Lookup(MainNetName)
	require.NoError(t, err)
	assert.Equal(t, MainNetName, params.Name)
	assert.Equal(t, []string{MainNetName, TestNetName, RegTestName}, Networks())
	assert.True(t, IsKnownNetwork(RegTestName))
	assert.False(t, IsKnownNetwork("testnet3"))

	_, err = Lookup("nope")
	assert.True(t, IsErrorCode(err, ErrUnknownNetwork))

	require.NoError(t, Select(TestNetName))
	active, err := ActiveParams()
	require.NoError(t, err)
	assert.Equal(t, TestNetName, active.Name)

	// The process registry already exists.
	err = InitRegistry()
	assert.True(t, IsErrorCode(err, ErrPrecondition))
}

func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrUnknownNetwork, "ErrUnknownNetwork"},
		{ErrGenesisIntegrity, "ErrGenesisIntegrity"},
		{ErrParameterConsistency, "ErrParameterConsistency"},
		{ErrPrecondition, "ErrPrecondition"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.in.String())
	}
}

func TestErrorWrapping(t *testing.T) {
	err := wrapError(ErrGenesisIntegrity, MainNetName, assert.AnError, "boom")
	assert.Equal(t, "main: boom: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, assert.AnError, err.Unwrap())
	assert.True(t, IsErrorCode(err, ErrGenesisIntegrity))
	assert.False(t, IsErrorCode(err, ErrPrecondition))
	assert.False(t, IsErrorCode(assert.AnError, ErrGenesisIntegrity))
}
