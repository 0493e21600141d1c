package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/joshuapare/reg2ps/internal/logger"
	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

var (
	convertInput    inputOptions
	convertStdout   bool
	convertNoHeader bool
	convertCopy     bool

	// clipboardWrite is replaced in tests.
	clipboardWrite = clipboard.WriteAll
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().BoolVar(&convertStdout, "stdout", false, "Write the script to stdout instead of a file")
	cmd.Flags().BoolVar(&convertNoHeader, "no-header", false, "Omit the generator comment from the output file")
	cmd.Flags().BoolVar(&convertCopy, "copy", false, "Copy the script to the clipboard")
	addInputFlags(cmd, &convertInput)
	rootCmd.AddCommand(cmd)
}

func addInputFlags(cmd *cobra.Command, opts *inputOptions) {
	cmd.Flags().StringVar(&opts.encoding, "encoding", "",
		"Input encoding when the file has no byte order mark (UTF-8, UTF-16LE, UTF-16BE, Windows-1252)")
	cmd.Flags().BoolVar(&opts.joinContinuations, "join-continuations", false,
		"Join lines ending in '\\' with the next line before converting")
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input.reg|-] [output.ps1]",
		Short: "Convert a .reg file to a PowerShell script",
		Long: `The convert command turns a .reg file into a PowerShell script made of
New-Item and Set-ItemProperty commands. Input is read from stdin when no file
or "-" is given. Without an output file the script is written to the
configured file name (converted-script.ps1 by default).

Example:
  reg2ps convert settings.reg settings.ps1
  reg2ps convert settings.reg --stdout
  reg2ps convert export.reg --encoding utf-16le --join-continuations
  cat settings.reg | reg2ps convert - --copy --stdout`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

// convertResult is the --json output of convert.
type convertResult struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Keys    int    `json:"keys"`
	Values  int    `json:"values"`
	Copied  bool   `json:"copied"`
	Success bool   `json:"success"`
}

func runConvert(args []string) error {
	inputPath := "-"
	if len(args) > 0 {
		inputPath = args[0]
	}
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && convertStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}
	if outputPath == "" && !convertStdout {
		outputPath = cfg.Output.FileName
	}

	script, err := loadScript(inputPath, convertInput)
	if err != nil {
		return err
	}

	if convertStdout {
		if _, err := script.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
	} else if err := writeScript(outputPath, script); err != nil {
		return err
	}

	if convertCopy {
		if err := clipboardWrite(script.String()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		printVerbose("Script copied to clipboard\n")
	}

	// stdout carries the script itself, so no summary there
	if convertStdout {
		return nil
	}

	if jsonOut {
		return printJSON(convertResult{
			Input:   displayName(inputPath),
			Output:  outputPath,
			Keys:    script.Keys(),
			Values:  script.Values(),
			Copied:  convertCopy,
			Success: true,
		})
	}

	printSuccess("Converted %d keys and %d values to %s", script.Keys(), script.Values(), outputPath)
	return nil
}

func writeScript(path string, script *reg2ps.Script) error {
	header := cfg.Output.Header
	if convertNoHeader {
		header = ""
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := reg2ps.WriteScriptFile(f, script, header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write script: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	logger.Info("script written", "path", path, "keys", script.Keys(), "values", script.Values())
	return nil
}
