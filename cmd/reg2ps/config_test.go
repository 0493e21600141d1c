package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/reg2ps/internal/config"
	"github.com/joshuapare/reg2ps/internal/server"
)

func TestConfigShow_TOML(t *testing.T) {
	resetFlags(t)

	out, err := captureOutput(t, runConfigShow)
	require.NoError(t, err)
	require.Contains(t, out, "[output]")
	require.Contains(t, out, "file_name = 'converted-script.ps1'")
	require.Contains(t, out, "[server]")
}

func TestConfigShow_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	out, err := captureOutput(t, runConfigShow)
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, *config.DefaultConfig(), got)
}

func TestConfigInit(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	_, err := captureOutput(t, func() error { return runConfigInit([]string{path}) })
	require.NoError(t, err)
	require.FileExists(t, path)

	// a second init refuses to overwrite
	_, err = captureOutput(t, func() error { return runConfigInit([]string{path}) })
	require.Error(t, err)

	configForce = true
	_, err = captureOutput(t, func() error { return runConfigInit([]string{path}) })
	require.NoError(t, err)

	loaded, used, err := config.Load(config.LoadOptions{ConfigFilePath: path})
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, config.DefaultConfig(), loaded)
}

func TestConfigInit_UsesConfigFlag(t *testing.T) {
	resetFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "custom.toml")

	_, err := captureOutput(t, func() error { return runConfigInit(nil) })
	require.NoError(t, err)

	data, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "max_body_bytes")
}

func TestServerOptions(t *testing.T) {
	resetFlags(t)
	cfg.Server.MaxBodyBytes = 2048
	cfg.Output.FileName = "out.ps1"
	serveJoin = true
	t.Cleanup(func() { serveJoin = false })

	require.Equal(t, server.Options{
		MaxBodyBytes:      2048,
		Header:            cfg.Output.Header,
		FileName:          "out.ps1",
		JoinContinuations: true,
	}, serverOptions())
}

func TestTUIOptions(t *testing.T) {
	resetFlags(t)
	input := writeTemp(t, "in.reg", []byte(sampleReg))

	opts, err := tuiOptions([]string{input})
	require.NoError(t, err)
	require.Equal(t, sampleReg, opts.Input)
	require.Equal(t, input, opts.InputPath)
	require.Equal(t, cfg.Output.FileName, opts.OutputPath)
	require.True(t, opts.NoColor)

	_, err = tuiOptions([]string{filepath.Join(t.TempDir(), "missing.reg")})
	require.Error(t, err)
}

func TestLoggerOptions(t *testing.T) {
	resetFlags(t)
	require.False(t, loggerOptions().Enabled)

	verbose = true
	opts := loggerOptions()
	require.True(t, opts.Enabled)
	require.True(t, opts.Console)

	quiet = true
	require.False(t, loggerOptions().Enabled)

	debug = true
	opts = loggerOptions()
	require.True(t, opts.Enabled)
	require.False(t, opts.Console)
}
