// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2026 The Quimera Labs developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml"
	"gitlab.com/quimeralabs/dogeposd/corelog"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "dogeposd.toml"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("dogeposd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// Config defines the configuration options for dogeposd.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	ConfigFile  string `yaml:"-" toml:"-" short:"C" long:"configfile" description:"Path to configuration file (.yaml or .toml)"`
	ShowVersion bool   `yaml:"-" toml:"-" short:"V" long:"version" description:"Display version information and exit"`

	DataDir string `yaml:"data_dir" toml:"data_dir" short:"b" long:"datadir" description:"Directory to store data"`
	LogDir  string `yaml:"log_dir" toml:"log_dir" long:"logdir" description:"Directory to log output."`

	Net              string   `yaml:"net" toml:"net" long:"net" description:"Network to use: main, test or regtest"`
	SkipGenesisCheck bool     `yaml:"skip_genesis_check" toml:"skip_genesis_check" long:"skipgenesischeck" description:"Do not assert the genesis hash of the selected network"`
	VBParams         []string `yaml:"vbparams" toml:"vbparams" long:"vbparams" description:"Override a regtest deployment window (deployment:start:end)"`

	DebugLevel string         `yaml:"debug_level" toml:"debug_level" short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogConfig  corelog.Config `yaml:"log_config" toml:"log_config" no-flag:"true"`
}

// Default returns a configuration with sane settings.
func Default() Config {
	return Config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultHomeDir,
		Net:        chaincfg.MainNetName,
		DebugLevel: defaultLogLevel,
		LogConfig:  corelog.Config{}.Default(),
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// decodeConfigFile overlays the content of path on cfg.  The decoder is
// chosen by the file suffix.
func decodeConfigFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewDecoder(file).Decode(cfg)
	case ".toml":
		return toml.NewDecoder(file).Decode(cfg)
	default:
		return fmt.Errorf("invalid file extension %q, must be .yaml or .toml", filepath.Ext(path))
	}
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in dogeposd functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.
func LoadConfig(args []string) (*Config, []string, error) {
	funcName := "LoadConfig"
	cfg := Default()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	if preCfg.ShowVersion {
		cfg.ShowVersion = true
		return &cfg, nil, nil
	}

	// Load additional config from file.  A missing default file is not an
	// error; an explicitly named one must exist.
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if fileExists(configFile) {
		if err := decodeConfigFile(configFile, &cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: unable to parse config file %s: %v",
				funcName, configFile, err)
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		return nil, nil, fmt.Errorf("%s: config file %s does not exist", funcName, configFile)
	}
	cfg.ConfigFile = configFile

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.Net)
	cfg.LogConfig.Directory = cfg.LogDir

	if !chaincfg.IsKnownNetwork(cfg.Net) {
		return nil, nil, fmt.Errorf("%s: the specified net name [%v] is invalid -- supported %v",
			funcName, cfg.Net, chaincfg.Networks())
	}

	if len(cfg.VBParams) > 0 && cfg.Net != chaincfg.RegTestName {
		return nil, nil, fmt.Errorf("%s: vbparams can only be used with the %s network",
			funcName, chaincfg.RegTestName)
	}
	for _, entry := range cfg.VBParams {
		if _, err := ParseVBParams(entry); err != nil {
			return nil, nil, fmt.Errorf("%s: %v", funcName, err)
		}
	}

	// Special show command to list supported subsystems.
	if cfg.DebugLevel == "show" {
		return &cfg, remainingArgs, nil
	}

	if _, err := parseDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%s: %v", funcName, err)
	}

	return &cfg, remainingArgs, nil
}
