package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

func TestInspectCommand_Text(t *testing.T) {
	resetFlags(t)
	input := writeTemp(t, "in.reg", []byte(sampleReg))

	out, err := captureOutput(t, func() error {
		return runInspect([]string{input})
	})
	require.NoError(t, err)
	require.Contains(t, out, "Keys: 1")
	require.Contains(t, out, "LINE")
	require.Contains(t, out, "New-Item")
	require.Contains(t, out, "ExpandString")
	require.Contains(t, out, `"%A%"`)
}

func TestInspectCommand_JSON(t *testing.T) {
	resetFlags(t)
	inspectFormat = "json"
	input := writeTemp(t, "in.reg", []byte(sampleReg))

	out, err := captureOutput(t, func() error {
		return runInspect([]string{input})
	})
	require.NoError(t, err)

	var result inspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Keys)
	require.Equal(t, 3, result.Values)
	require.Len(t, result.Commands, 4)
	require.Equal(t, reg2ps.Command{
		Kind:  reg2ps.SetItemProperty,
		Line:  5,
		Path:  `HKLM:\Software\Contoso`,
		Name:  "Level",
		Value: "3",
		Type:  reg2ps.TypeDWord,
	}, result.Commands[2])
}

func TestInspectCommand_GlobalJSONFlag(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	inspectFormat = "yaml"
	input := writeTemp(t, "in.reg", []byte(sampleReg))

	out, err := captureOutput(t, func() error {
		return runInspect([]string{input})
	})
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
}

func TestInspectCommand_YAML(t *testing.T) {
	resetFlags(t)
	inspectFormat = "yaml"
	input := writeTemp(t, "in.reg", []byte(sampleReg))

	out, err := captureOutput(t, func() error {
		return runInspect([]string{input})
	})
	require.NoError(t, err)

	var result inspectResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	require.Len(t, result.Commands, 4)
	require.Equal(t, reg2ps.NewItem, result.Commands[0].Kind)
	require.Equal(t, 3, result.Commands[0].Line)
}

func TestInspectCommand_OnlyBanner(t *testing.T) {
	resetFlags(t)
	inspectFormat = "json"
	input := writeTemp(t, "in.reg", []byte("Windows Registry Editor Version 5.00\n"))

	out, err := captureOutput(t, func() error {
		return runInspect([]string{input})
	})
	require.NoError(t, err)
	require.Contains(t, out, `"commands": []`)
}

func TestInspectCommand_UnknownFormat(t *testing.T) {
	resetFlags(t)
	inspectFormat = "xml"
	require.ErrorContains(t, runInspect([]string{"whatever.reg"}), "unknown format")
}
