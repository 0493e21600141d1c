package main

import (
	"fmt"

	"github.com/joshuapare/reg2ps/internal/logger"
	"github.com/joshuapare/reg2ps/internal/mmfile"
	"github.com/joshuapare/reg2ps/internal/regtext"
	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

// inputOptions are the flags shared by every command that reads .reg input.
type inputOptions struct {
	encoding          string
	joinContinuations bool
}

// effective fills unset options from the loaded configuration.
func (o inputOptions) effective() inputOptions {
	if o.encoding == "" {
		o.encoding = cfg.Output.Encoding
	}
	o.joinContinuations = o.joinContinuations || cfg.Output.JoinContinuations
	return o
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

// readInput reads and decodes a .reg file, or stdin for "" and "-".
func readInput(path string, opts inputOptions) (string, error) {
	data, cleanup, err := mmfile.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	defer cleanup()

	text, err := regtext.DecodeInput(data, opts.encoding)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", displayName(path), err)
	}
	logger.Debug("input read", "path", displayName(path), "bytes", len(data), "encoding", opts.encoding)
	return text, nil
}

// loadScript reads path and converts it. Conversion errors are returned
// unwrapped so their message reaches the user as is.
func loadScript(path string, opts inputOptions) (*reg2ps.Script, error) {
	opts = opts.effective()

	printVerbose("Reading: %s\n", displayName(path))
	text, err := readInput(path, opts)
	if err != nil {
		return nil, err
	}

	script, err := reg2ps.ParseWithOptions(text, reg2ps.Options{JoinContinuations: opts.joinContinuations})
	if err != nil {
		logger.Debug("conversion failed", "path", displayName(path), "error", err)
		return nil, err
	}
	logger.Debug("converted", "path", displayName(path), "keys", script.Keys(), "values", script.Values())
	return script, nil
}
