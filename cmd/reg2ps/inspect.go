package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

var (
	inspectInput  inputOptions
	inspectFormat string
)

func init() {
	cmd := newInspectCmd()
	cmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format (text, json, yaml)")
	addInputFlags(cmd, &inspectInput)
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input.reg|-]",
		Short: "Show the commands a .reg file converts to",
		Long: `The inspect command parses a .reg file and lists each generated command
with the source line it came from, its key path, value name and type.

Example:
  reg2ps inspect settings.reg
  reg2ps inspect settings.reg --format yaml
  reg2ps inspect settings.reg --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

// inspectResult is the structured output of inspect.
type inspectResult struct {
	Input    string           `json:"input" yaml:"input"`
	Keys     int              `json:"keys" yaml:"keys"`
	Values   int              `json:"values" yaml:"values"`
	Commands []reg2ps.Command `json:"commands" yaml:"commands"`
}

func runInspect(args []string) error {
	inputPath := "-"
	if len(args) > 0 {
		inputPath = args[0]
	}

	format := inspectFormat
	if jsonOut {
		format = "json"
	}
	if format != "text" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	script, err := loadScript(inputPath, inspectInput)
	if err != nil {
		return err
	}

	result := inspectResult{
		Input:    displayName(inputPath),
		Keys:     script.Keys(),
		Values:   script.Values(),
		Commands: script.Commands,
	}
	if result.Commands == nil {
		result.Commands = []reg2ps.Command{}
	}

	switch format {
	case "json":
		return printJSON(result)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return printInspectText(result)
	}
}

func printInspectText(result inspectResult) error {
	printInfo("%s %s  %s %d  %s %d\n\n",
		render(labelStyle, "Input:"), result.Input,
		render(labelStyle, "Keys:"), result.Keys,
		render(labelStyle, "Values:"), result.Values)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tCOMMAND\tPATH\tNAME\tTYPE\tVALUE")
	for _, c := range result.Commands {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", c.Line, c.Kind, c.Path, c.Name, c.Type, c.Value)
	}
	return w.Flush()
}
