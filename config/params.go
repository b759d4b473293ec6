// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
)

// VBParams is a parsed --vbparams entry.
type VBParams struct {
	Deployment int
	StartTime  int64
	Timeout    int64
}

// ParseVBParams parses a deployment:start:end entry.  The deployment is named
// the way chaincfg.DeploymentName prints it.
func ParseVBParams(entry string) (VBParams, error) {
	parts := strings.Split(entry, ":")
	if len(parts) != 3 {
		return VBParams{}, errors.Errorf("vbparams %q must be deployment:start:end", entry)
	}

	id, ok := chaincfg.DeploymentByName(parts[0])
	if !ok {
		return VBParams{}, errors.Errorf("vbparams %q names an unknown deployment", entry)
	}

	start, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return VBParams{}, errors.Wrapf(err, "vbparams %q has an invalid start time", entry)
	}
	timeout, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return VBParams{}, errors.Wrapf(err, "vbparams %q has an invalid end time", entry)
	}

	return VBParams{Deployment: id, StartTime: start, Timeout: timeout}, nil
}

// networkSelector is the part of chaincfg.Registry used to activate a
// network.
type networkSelector interface {
	Select(name string) error
	Active() (*chaincfg.Params, error)
	OverrideRegtestDeployment(id int, start, timeout int64) error
}

// processSelector routes networkSelector calls to the process registry.
type processSelector struct{}

func (processSelector) Select(name string) error { return chaincfg.Select(name) }

func (processSelector) Active() (*chaincfg.Params, error) { return chaincfg.ActiveParams() }

func (processSelector) OverrideRegtestDeployment(id int, start, timeout int64) error {
	return chaincfg.OverrideRegtestDeployment(id, start, timeout)
}

// SelectNetwork initializes the process chain parameters, applies the
// regtest deployment overrides and selects cfg.Net.
func SelectNetwork(cfg *Config) (*chaincfg.Params, error) {
	var opts []chaincfg.RegistryOption
	if cfg.SkipGenesisCheck {
		opts = append(opts, chaincfg.WithNetworkOptions(cfg.Net,
			chaincfg.WithSkipGenesisVerification(true)))
	}

	if err := chaincfg.InitRegistry(opts...); err != nil {
		return nil, errors.Wrap(err, "unable to build chain parameters")
	}

	return selectNetwork(processSelector{}, cfg)
}

func selectNetwork(registry networkSelector, cfg *Config) (*chaincfg.Params, error) {
	if len(cfg.VBParams) > 0 && cfg.Net != chaincfg.RegTestName {
		return nil, errors.Errorf("vbparams can only be used with the %s network",
			chaincfg.RegTestName)
	}

	for _, entry := range cfg.VBParams {
		vb, err := ParseVBParams(entry)
		if err != nil {
			return nil, err
		}

		err = registry.OverrideRegtestDeployment(vb.Deployment, vb.StartTime, vb.Timeout)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to apply vbparams %q", entry)
		}
	}

	if err := registry.Select(cfg.Net); err != nil {
		return nil, err
	}
	return registry.Active()
}
