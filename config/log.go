// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/quimeralabs/dogeposd/corelog"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
)

const (
	LogUnitMAIN = "MAIN"
	LogUnitCHCF = "CHCF"
)

// Loggers per subsystem.  When adding new subsystems, add the subsystem
// logger to unitLogs and wire it in setLoggers.
var (
	// Log is the logger of the main package.
	Log = corelog.Disabled

	unitLogs = map[string]zerolog.Logger{
		LogUnitMAIN: corelog.Disabled,
		LogUnitCHCF: corelog.Disabled,
	}
)

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	// Convert the unitLogs map keys to a slice.
	subsystems := make([]string, 0, len(unitLogs))
	for subsysID := range unitLogs {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// SupportedSubsystems returns the subsystems accepted by --debuglevel.
func SupportedSubsystems() []string {
	return supportedSubsystems()
}

// parseDebugLevels parses a debuglevel string into a level per subsystem.
// A bare level applies to every subsystem.
func parseDebugLevels(debugLevel string) (map[string]zerolog.Level, error) {
	levels := make(map[string]zerolog.Level, len(unitLogs))

	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := corelog.ParseLevel(debugLevel)
		if err != nil {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}

		for subsysID := range unitLogs {
			levels[subsysID] = level
		}
		return levels, nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return nil, fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.SplitN(logLevelPair, "=", 2)
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := unitLogs[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return nil, fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		level, err := corelog.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}
		levels[subsysID] = level
	}

	return levels, nil
}

// SetupLogging creates the subsystem loggers described by cfg and hands
// them to the packages that log.
func SetupLogging(cfg *Config) error {
	levels, err := parseDebugLevels(cfg.DebugLevel)
	if err != nil {
		return err
	}

	for subsysID := range unitLogs {
		level, ok := levels[subsysID]
		if !ok {
			level = corelog.DefaultLevel
		}
		unitLogs[subsysID] = corelog.New(subsysID, level, cfg.LogConfig)
	}

	setLoggers()
	return nil
}

// setLoggers initializes package-global logger variables.
func setLoggers() {
	Log = unitLogs[LogUnitMAIN]
	chaincfg.UseLogger(unitLogs[LogUnitCHCF])
}
