package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/quimeralabs/dogeposd/types/chaincfg"
)

func writeConfigFile(t *testing.T, name, content string) (string, func()) {
	tmpDir, err := ioutil.TempDir("", "dogeposd")
	require.NoError(t, err)

	path := filepath.Join(tmpDir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path, func() { os.RemoveAll(tmpDir) }
}

func TestLoadConfigTOML(t *testing.T) {
	path, cleanup := writeConfigFile(t, "dogeposd.toml", `
net = "regtest"
data_dir = "/tmp/dogeposd-data"
debug_level = "CHCF=debug,MAIN=info"
vbparams = ["testdummy:0:999999999999"]

[log_config]
logs_as_json = true
max_backups = 7
`)
	defer cleanup()

	cfg, rest, err := LoadConfig([]string{"--configfile", path, "extra"})
	require.NoError(t, err)

	assert.Equal(t, []string{"extra"}, rest)
	assert.Equal(t, chaincfg.RegTestName, cfg.Net)
	assert.Equal(t, "/tmp/dogeposd-data", cfg.DataDir)
	assert.Equal(t, filepath.Join("/tmp/dogeposd-data", defaultLogDirname, "regtest"), cfg.LogDir)
	assert.Equal(t, cfg.LogDir, cfg.LogConfig.Directory)
	assert.Equal(t, []string{"testdummy:0:999999999999"}, cfg.VBParams)
	assert.True(t, cfg.LogConfig.LogsAsJson)
	assert.Equal(t, 7, cfg.LogConfig.MaxBackups)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadConfigYAML(t *testing.T) {
	path, cleanup := writeConfigFile(t, "dogeposd.yaml", `
net: test
debug_level: warn
log_config:
  file_logging_enabled: true
`)
	defer cleanup()

	cfg, _, err := LoadConfig([]string{"-C", path})
	require.NoError(t, err)
	assert.Equal(t, chaincfg.TestNetName, cfg.Net)
	assert.Equal(t, "warn", cfg.DebugLevel)
	assert.True(t, cfg.LogConfig.FileLoggingEnabled)
}

func TestLoadConfigCommandLineWins(t *testing.T) {
	path, cleanup := writeConfigFile(t, "dogeposd.toml", `net = "test"`)
	defer cleanup()

	cfg, _, err := LoadConfig([]string{"--configfile", path, "--net", "regtest", "--skipgenesischeck"})
	require.NoError(t, err)
	assert.Equal(t, chaincfg.RegTestName, cfg.Net)
	assert.True(t, cfg.SkipGenesisCheck)
}

func TestLoadConfigErrors(t *testing.T) {
	tomlPath, cleanup := writeConfigFile(t, "dogeposd.toml", `net = "main"`)
	defer cleanup()
	iniPath, cleanupIni := writeConfigFile(t, "dogeposd.conf", `net=main`)
	defer cleanupIni()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown network", []string{"-C", tomlPath, "--net", "testnet3"}},
		{"vbparams outside regtest", []string{"-C", tomlPath, "--vbparams", "testdummy:0:10"}},
		{"bad vbparams", []string{"-C", tomlPath, "--net", "regtest", "--vbparams", "testdummy:0"}},
		{"bad debug level", []string{"-C", tomlPath, "--debuglevel", "loud"}},
		{"bad subsystem", []string{"-C", tomlPath, "--debuglevel", "PEER=info"}},
		{"missing config file", []string{"-C", tomlPath + ".missing"}},
		{"bad extension", []string{"-C", iniPath}},
		{"unknown flag", []string{"-C", tomlPath, "--rpcport", "1"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := LoadConfig(test.args)
			assert.Error(t, err)
		})
	}
}

func TestParseVBParams(t *testing.T) {
	vb, err := ParseVBParams("testdummy:100:200")
	require.NoError(t, err)
	assert.Equal(t, VBParams{Deployment: chaincfg.DeploymentTestDummy, StartTime: 100, Timeout: 200}, vb)

	for _, bad := range []string{"", "testdummy", "csv:1:2", "testdummy:x:2", "testdummy:1:y", "testdummy:1:2:3"} {
		_, err := ParseVBParams(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDebugLevels(t *testing.T) {
	levels, err := parseDebugLevels("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, levels[LogUnitMAIN])
	assert.Equal(t, zerolog.DebugLevel, levels[LogUnitCHCF])

	levels, err = parseDebugLevels("CHCF=trace,MAIN=critical")
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, levels[LogUnitCHCF])
	assert.Equal(t, zerolog.FatalLevel, levels[LogUnitMAIN])

	_, err = parseDebugLevels("CHCF")
	assert.Error(t, err)
	_, err = parseDebugLevels("CHCF=info,MAIN")
	assert.Error(t, err)

	assert.Equal(t, []string{LogUnitCHCF, LogUnitMAIN}, SupportedSubsystems())
}

func TestSelectNetworkAppliesVBParams(t *testing.T) {
	registry, err := chaincfg.NewRegistry()
	require.NoError(t, err)

	cfg := Default()
	cfg.Net = chaincfg.RegTestName
	cfg.VBParams = []string{"testdummy:5:50"}

	params, err := selectNetwork(registry, &cfg)
	require.NoError(t, err)
	assert.Equal(t, chaincfg.RegTestName, params.Name)

	d, ok := params.Deployment(chaincfg.DeploymentTestDummy)
	require.True(t, ok)
	assert.Equal(t, int64(5), d.StartTime)
	assert.Equal(t, int64(50), d.ExpireTime)

	main, err := registry.Get(chaincfg.MainNetName)
	require.NoError(t, err)
	d, _ = main.Deployment(chaincfg.DeploymentTestDummy)
	assert.NotEqual(t, int64(5), d.StartTime)
}

func TestSelectNetworkErrors(t *testing.T) {
	registry, err := chaincfg.NewRegistry()
	require.NoError(t, err)

	cfg := Default()
	cfg.VBParams = []string{"testdummy:5:50"}
	_, err = selectNetwork(registry, &cfg)
	assert.Error(t, err)

	cfg.Net = chaincfg.RegTestName
	cfg.VBParams = []string{"testdummy:50:5"}
	_, err = selectNetwork(registry, &cfg)
	require.Error(t, err)
	assert.True(t, chaincfg.IsErrorCode(err, chaincfg.ErrParameterConsistency))

	// Nothing was selected.
	_, err = registry.Active()
	assert.True(t, chaincfg.IsErrorCode(err, chaincfg.ErrPrecondition))
}

func TestSetupLogging(t *testing.T) {
	cfg := Default()
	cfg.DebugLevel = "CHCF=debug"
	cfg.LogConfig.DisableConsoleLog = true
	require.NoError(t, SetupLogging(&cfg))

	cfg.DebugLevel = "nope"
	assert.Error(t, SetupLogging(&cfg))
}
