package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/joshuapare/reg2ps/internal/config"
	"github.com/joshuapare/reg2ps/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	debug   bool
	cfgFile string

	// cfg is the effective configuration, loaded before any command runs.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "reg2ps",
	Short: "Convert Windows registry .reg files to PowerShell",
	Long: `reg2ps turns Windows registry export (.reg) files into PowerShell
scripts built from New-Item and Set-ItemProperty commands.

Example:
  reg2ps convert settings.reg settings.ps1
  reg2ps convert settings.reg --stdout
  reg2ps inspect settings.reg --format yaml
  reg2ps tui settings.reg
  reg2ps serve --addr :8080`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to ~/.reg2ps/logs")
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/reg2ps/config.toml)")
}

func execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(printError),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig loads configuration and sets up logging.
func initRootConfig() {
	loaded, path, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, render(warningStyle, "Warning: ")+err.Error())
	} else {
		cfg = loaded
	}

	if cfg.UI.NoColor {
		noColor = true
	}

	if err := logger.Init(loggerOptions()); err != nil {
		fmt.Fprintln(os.Stderr, render(warningStyle, "Warning: ")+"logging disabled: "+err.Error())
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
}

// loggerOptions maps the global flags to logger settings: --debug logs to a
// file, --verbose logs to stderr, otherwise logging is off.
func loggerOptions() logger.Options {
	switch {
	case debug:
		return logger.Options{Enabled: true, Level: slog.LevelDebug}
	case verbose && !quiet:
		return logger.Options{Enabled: true, Console: true, Level: slog.LevelDebug, NoColor: noColor}
	default:
		return logger.Options{}
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printSuccess prints a green notification line unless quiet.
func printSuccess(format string, args ...any) {
	if !quiet {
		fmt.Fprintln(os.Stdout, render(successStyle, fmt.Sprintf(format, args...)))
	}
}

// printError renders command errors as a red notification line. Conversion
// errors already read as sentences ("Missing '=' on line 3").
func printError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, render(errorStyle, err.Error()))
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
