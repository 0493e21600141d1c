package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/reg2ps/internal/tui"
)

var tuiInput inputOptions

func init() {
	cmd := newTUICmd()
	addInputFlags(cmd, &tuiInput)
	rootCmd.AddCommand(cmd)
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [input.reg]",
		Short: "Convert interactively in the terminal",
		Long: `The tui command opens an editor with .reg input on the left and the
generated script on the right. Press F1 for key bindings.

Example:
  reg2ps tui
  reg2ps tui settings.reg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := tuiOptions(args)
			if err != nil {
				return err
			}
			return tui.Run(opts)
		},
	}
}

func tuiOptions(args []string) (tui.Options, error) {
	input := tuiInput.effective()
	opts := tui.Options{
		OutputPath:        cfg.Output.FileName,
		Header:            cfg.Output.Header,
		JoinContinuations: input.joinContinuations,
		NoColor:           noColor,
	}
	if len(args) == 0 {
		return opts, nil
	}

	text, err := readInput(args[0], input)
	if err != nil {
		return opts, err
	}
	opts.Input = text
	opts.InputPath = args[0]
	return opts, nil
}
