/*
 * Copyright (c) 2026 The Quimera Labs developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"fmt"
	"sync"
)

// RegistryOption tunes the profiles built by NewRegistry.
type RegistryOption func(map[string][]Option)

// WithNetworkOptions passes opts to the constructor of the named network.
func WithNetworkOptions(name string, opts ...Option) RegistryOption {
	return func(m map[string][]Option) {
		m[name] = append(m[name], opts...)
	}
}

// networkConstructors lists the networks in construction order.
var networkConstructors = []struct {
	name string
	ctor func(...Option) (*Params, error)
}{
	{MainNetName, NewMainNetParams},
	{TestNetName, NewTestNetParams},
	{RegTestName, NewRegTestParams},
}

// Registry holds one profile per network and the profile selected for the
// running process.  Profiles are read-only after construction except for the
// regtest deployment windows, which may only be changed during setup before
// the profile is shared with other goroutines.
type Registry struct {
	profiles map[string]*Params
	names    []string

	mtx    sync.RWMutex
	active *Params
}

// NewRegistry builds every network profile and checks that no two of them
// share a network identifier.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	perNetwork := make(map[string][]Option)
	for _, opt := range opts {
		opt(perNetwork)
	}

	r := &Registry{profiles: make(map[string]*Params, len(networkConstructors))}
	ordered := make([]*Params, 0, len(networkConstructors))
	for _, nc := range networkConstructors {
		params, err := nc.ctor(perNetwork[nc.name]...)
		if err != nil {
			return nil, err
		}

		r.profiles[nc.name] = params
		r.names = append(r.names, nc.name)
		ordered = append(ordered, params)
	}

	if err := validateRegistry(ordered); err != nil {
		return nil, err
	}

	return r, nil
}

// Networks returns the registered network names in construction order.
func (r *Registry) Networks() []string {
	return append([]string(nil), r.names...)
}

// Get returns the profile registered under name.
func (r *Registry) Get(name string) (*Params, error) {
	params, ok := r.profiles[name]
	if !ok {
		return nil, newError(ErrUnknownNetwork, name,
			fmt.Sprintf("unknown network, expected one of %v", r.names))
	}
	return params, nil
}

// Select makes the named profile the active one.  On error the active
// profile is left unchanged.
func (r *Registry) Select(name string) error {
	params, err := r.Get(name)
	if err != nil {
		return err
	}

	r.mtx.Lock()
	r.active = params
	r.mtx.Unlock()

	log.Info().Str("net", name).Msg("selected chain parameters")
	return nil
}

// Active returns the selected profile.
func (r *Registry) Active() (*Params, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.active == nil {
		return nil, newError(ErrPrecondition, "", "no network has been selected")
	}
	return r.active, nil
}

// MustActive returns the selected profile and panics when there is none.
func (r *Registry) MustActive() *Params {
	params, err := r.Active()
	if err != nil {
		panic(err)
	}
	return params
}

// OverrideRegtestDeployment replaces the voting window of a regtest
// deployment.  Other networks are never touched.  It must only be called
// during setup.
func (r *Registry) OverrideRegtestDeployment(id int, start, timeout int64) error {
	params, err := r.Get(RegTestName)
	if err != nil {
		return err
	}
	if !params.mutableDeployments {
		return newError(ErrPrecondition, params.Name, "deployments are immutable")
	}

	if id < 0 || id >= DefinedDeployments {
		return newError(ErrParameterConsistency, params.Name,
			fmt.Sprintf("unknown deployment id %d", id))
	}
	if timeout <= start {
		return newError(ErrParameterConsistency, params.Name,
			fmt.Sprintf("deployment %s times out at %d, not after its start %d",
				DeploymentName(id), timeout, start))
	}

	params.Consensus.Deployments[id].StartTime = start
	params.Consensus.Deployments[id].ExpireTime = timeout

	log.Info().Str("deployment", DeploymentName(id)).Int64("start", start).
		Int64("timeout", timeout).Msg("regtest deployment overridden")
	return nil
}

var (
	processRegistry     *Registry
	processRegistryOnce sync.Once
)

// InitRegistry builds the process registry with opts.  It must run before
// any other package level accessor; once the registry exists it returns
// ErrPrecondition.
func InitRegistry(opts ...RegistryOption) error {
	var (
		initialized bool
		err         error
	)
	processRegistryOnce.Do(func() {
		initialized = true
		processRegistry, err = NewRegistry(opts...)
	})

	if !initialized {
		return newError(ErrPrecondition, "", "chain parameters are already initialized")
	}
	return err
}

// defaultRegistry returns the process registry, building it on first use.
// Startup must abort when the hard-coded profiles are broken, so a
// construction failure panics.
func defaultRegistry() *Registry {
	processRegistryOnce.Do(func() {
		r, err := NewRegistry()
		if err != nil {
			panic(err)
		}
		processRegistry = r
	})
	if processRegistry == nil {
		panic(newError(ErrPrecondition, "", "chain parameters failed to initialize"))
	}
	return processRegistry
}

// Select makes the named network the active one for the process.
func Select(name string) error {
	return defaultRegistry().Select(name)
}

// ActiveParams returns the network selected for the process.
func ActiveParams() (*Params, error) {
	return defaultRegistry().Active()
}

// Lookup returns the process profile of the named network.
func Lookup(name string) (*Params, error) {
	return defaultRegistry().Get(name)
}

// Networks returns the names of every known network in construction order.
// It does not build the process registry.
func Networks() []string {
	names := make([]string, 0, len(networkConstructors))
	for _, nc := range networkConstructors {
		names = append(names, nc.name)
	}
	return names
}

// IsKnownNetwork reports whether name is a registered network name.
func IsKnownNetwork(name string) bool {
	for _, nc := range networkConstructors {
		if nc.name == name {
			return true
		}
	}
	return false
}

// OverrideRegtestDeployment replaces the voting window of a deployment of
// the process regtest profile.
func OverrideRegtestDeployment(id int, start, timeout int64) error {
	return defaultRegistry().OverrideRegtestDeployment(id, start, timeout)
}
