package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/reg2ps/internal/config"
)

const sampleReg = "Windows Registry Editor Version 5.00\r\n\r\n" +
	"[HKEY_LOCAL_MACHINE\\Software\\Contoso]\r\n" +
	"\"Name\"=\"Contoso App\"\r\n" +
	"\"Level\"=dword:00000003\r\n" +
	"\"Path\"=hex(2):25,00,41,00,25,00,00,00\r\n"

const sampleScript = "New-Item -Path 'HKLM:\\Software\\Contoso' -Force\n" +
	"Set-ItemProperty -Path 'HKLM:\\Software\\Contoso' -Name 'Name' -Value 'Contoso App' -Type String\n" +
	"Set-ItemProperty -Path 'HKLM:\\Software\\Contoso' -Name 'Level' -Value 3 -Type DWord\n" +
	"Set-ItemProperty -Path 'HKLM:\\Software\\Contoso' -Name 'Path' -Value \"%A%\" -Type ExpandString\n"

// resetFlags restores every package-level flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, noColor, debug = false, false, false, true, false
	cfgFile = ""
	cfg = config.DefaultConfig()

	convertInput = inputOptions{}
	convertStdout, convertNoHeader, convertCopy = false, false, false
	inspectInput = inputOptions{}
	inspectFormat = "text"
	configForce = false
}

// writeTemp writes data to name inside a fresh temp dir and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	out := <-done
	r.Close()

	return string(out), fnErr
}
