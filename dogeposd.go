// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"gitlab.com/quimeralabs/dogeposd/config"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
)

const appVersion = "0.1.0"

func main() {
	// Work around defer not working after os.Exit()
	if err := dogeposdMain(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
}

// dogeposdMain loads the configuration, selects the chain parameters of the
// configured network and verifies them.  A broken parameter set is fatal.
func dogeposdMain(args []string) error {
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		fmt.Println("dogeposd version", appVersion)
		return nil
	}

	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", config.SupportedSubsystems())
		return nil
	}

	if err := config.SetupLogging(cfg); err != nil {
		return err
	}

	config.Log.Info().Msgf("Version %s", appVersion)

	params, err := config.SelectNetwork(cfg)
	if err != nil {
		config.Log.Error().Err(err).Str("net", cfg.Net).Msg("Unable to load chain parameters")
		return err
	}

	logParams(params)
	return nil
}

// logParams prints the identity of the active network.
func logParams(params *chaincfg.Params) {
	seeds := make([]string, 0, len(params.DNSSeeds))
	for _, seed := range params.DNSSeeds {
		seeds = append(seeds, seed.String())
	}

	config.Log.Info().
		Str("net", params.Name).
		Str("magic", fmt.Sprintf("%x", params.Net.Bytes())).
		Str("port", params.DefaultPort).
		Str("genesis", params.GenesisHash().String()).
		Str("merkle_root", params.GenesisBlock.Header.MerkleRoot.String()).
		Bool("genesis_check_skipped", params.GenesisCheckSkipped()).
		Int("checkpoints", params.Checkpoints.Len()).
		Str("dns_seeds", strings.Join(seeds, ",")).
		Msg("Chain parameters loaded")
}
