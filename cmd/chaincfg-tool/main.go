// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/quimeralabs/dogeposd/corelog"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
)

const (
	flagNet              = "net"
	flagSkipGenesisCheck = "skip-genesis-check"
	flagDebugLevel       = "debuglevel"
	flagFormat           = "format"
	flagDump             = "dump"
	flagHex              = "hex"
	flagFile             = "file"
	flagWorkers          = "workers"
	flagStartNonce       = "start-nonce"
	flagBits             = "bits"
	flagTime             = "time"
	flagTimeout          = "timeout"
)

var standardFlags = map[string]cli.Flag{
	flagNet: &cli.StringFlag{
		Name:    flagNet,
		Aliases: []string{"n"},
		Value:   chaincfg.MainNetName,
		Usage:   "network to inspect: main, test or regtest",
	},
	flagFormat: &cli.StringFlag{
		Name:  flagFormat,
		Value: "text",
		Usage: "output format",
	},
}

// App holds the state shared by the commands.
type App struct {
	registry *chaincfg.Registry
	log      zerolog.Logger
	out      io.Writer
}

func main() {
	err := newCliApp(&App{}, os.Stdout).Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newCliApp(app *App, out io.Writer) *cli.App {
	app.out = out
	return &cli.App{
		Name:     "chaincfg-tool",
		Usage:    "inspect and verify dogeposd chain parameters",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
		Writer:   out,
	}
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "list",
			Usage:  "list the known networks and their genesis hashes",
			Action: app.ListCmd,
		},
		{
			Name:   "show",
			Usage:  "print the full parameter set of a network as yaml",
			Flags:  []cli.Flag{standardFlags[flagNet]},
			Action: app.ShowCmd,
		},
		{
			Name:  "genesis",
			Usage: "rebuild and print the genesis block of a network",
			Flags: []cli.Flag{
				standardFlags[flagNet],
				&cli.BoolFlag{Name: flagDump, Usage: "dump the block structure"},
				&cli.BoolFlag{Name: flagHex, Usage: "print the serialized block"},
			},
			Action: app.GenesisCmd,
		},
		{
			Name:  "checkpoints",
			Usage: "print the checkpoints of a network or verify a checkpoint csv",
			Flags: []cli.Flag{
				standardFlags[flagNet],
				standardFlags[flagFormat],
				&cli.StringFlag{Name: flagFile, Usage: "checkpoint csv to verify against the network"},
			},
			Action: app.CheckpointsCmd,
		},
		{
			Name:  "mine",
			Usage: "search a genesis nonce that satisfies the bits of a network",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagNet,
					Value: chaincfg.RegTestName,
					Usage: "network whose genesis is re-mined",
				},
				&cli.IntFlag{Name: flagWorkers, Value: 1, Usage: "number of hashing goroutines"},
				&cli.Uint64Flag{Name: flagStartNonce, Usage: "first nonce to try"},
				&cli.StringFlag{Name: flagBits, Usage: "compact target in hex, defaults to the genesis bits"},
				&cli.Uint64Flag{Name: flagTime, Usage: "genesis time, defaults to the network genesis time"},
				&cli.DurationFlag{Name: flagTimeout, Usage: "give up after this long"},
			},
			Action: app.MineCmd,
		},
	}
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  flagSkipGenesisCheck,
			Usage: "do not assert the genesis hashes while loading the parameters",
		},
		&cli.StringFlag{
			Name:  flagDebugLevel,
			Value: "warn",
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	level, err := corelog.ParseLevel(c.String(flagDebugLevel))
	if err != nil {
		return cli.Exit(err, 1)
	}
	app.log = corelog.New("TOOL", level, corelog.Config{}.Default())
	chaincfg.UseLogger(app.log)

	var opts []chaincfg.RegistryOption
	if c.Bool(flagSkipGenesisCheck) {
		for _, name := range chaincfg.Networks() {
			opts = append(opts, chaincfg.WithNetworkOptions(name,
				chaincfg.WithSkipGenesisVerification(true)))
		}
	}

	app.registry, err = chaincfg.NewRegistry(opts...)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "unable to load chain parameters"), 1)
	}
	return nil
}

func (app *App) params(c *cli.Context) (*chaincfg.Params, error) {
	params, err := app.registry.Get(c.String(flagNet))
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return params, nil
}
