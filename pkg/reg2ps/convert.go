package reg2ps

import (
	"strconv"
	"strings"

	"github.com/joshuapare/reg2ps/internal/regtext"
)

// Options controls conversion behavior. The zero value converts every
// physical line on its own.
type Options struct {
	// JoinContinuations merges value lines ending in '\' with the next line
	// so wrapped hex payloads from regedit convert as one value.
	JoinContinuations bool
}

// Convert translates .reg text into a PowerShell script made of New-Item and
// Set-ItemProperty commands, one per line.
//
// The first malformed line aborts the conversion; the returned *Error names
// the failure and its 1-based line number. Blank input returns ErrEmptyInput.
func Convert(text string) (string, error) {
	return ConvertWithOptions(text, Options{})
}

// ConvertWithOptions is Convert with explicit options.
func ConvertWithOptions(text string, opts Options) (string, error) {
	s, err := ParseWithOptions(text, opts)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Parse converts .reg text into a Script without rendering it.
func Parse(text string) (*Script, error) {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(text string, opts Options) (*Script, error) {
	if regtext.IsBlank(text) {
		return nil, ErrEmptyInput
	}

	lines := regtext.Scan(text, regtext.ScanOptions{JoinContinuations: opts.JoinContinuations})
	script := &Script{Commands: make([]Command, 0, len(lines))}
	var current string

	for _, line := range lines {
		if line.Kind == regtext.LineSection {
			path, err := parseSection(line)
			if err != nil {
				return nil, err
			}
			current = path
			script.Commands = append(script.Commands, Command{
				Kind: NewItem,
				Line: line.Number,
				Path: current,
			})
			continue
		}

		if current == "" {
			return nil, newLineError(ErrKindValueOutsideSection, line.Number, line.Text, nil)
		}
		cmd, err := parseValueLine(current, line)
		if err != nil {
			return nil, err
		}
		script.Commands = append(script.Commands, cmd)
	}

	return script, nil
}

// parseSection turns "[HKEY_CURRENT_USER\Software]" into "HKCU:\Software".
func parseSection(line regtext.Line) (string, error) {
	if !strings.HasSuffix(line.Text, regtext.KeyCloseBracket) {
		return "", newLineError(ErrKindMalformedSectionHeader, line.Number, line.Text, nil)
	}
	section := strings.TrimPrefix(line.Text, regtext.KeyOpenBracket)
	section = strings.TrimSuffix(section, regtext.KeyCloseBracket)

	path, ok := DriveFor(section)
	if !ok {
		return "", newLineError(ErrKindUnknownHive, line.Number, line.Text, nil)
	}
	return path, nil
}

func parseValueLine(path string, line regtext.Line) (Command, error) {
	namePart, data, ok := regtext.SplitAssignment(line.Text)
	if !ok {
		return Command{}, newLineError(ErrKindMissingEquals, line.Number, line.Text, nil)
	}

	value, typ, err := parseValue(strings.TrimSpace(data))
	if err != nil {
		return Command{}, newLineError(ErrKindInvalidDword, line.Number, line.Text, err)
	}

	return Command{
		Kind:  SetItemProperty,
		Line:  line.Number,
		Path:  path,
		Name:  regtext.StripQuotes(namePart),
		Value: value,
		Type:  typ,
	}, nil
}

// parseValue renders the PowerShell literal for a value's data. The only
// failure is a dword payload that is not a 32-bit hex integer.
func parseValue(data string) (string, ValueType, error) {
	kind, rest := regtext.DetectValueType(data)
	switch kind {
	case regtext.ValueTypeDWORD:
		n, err := strconv.ParseUint(strings.TrimSpace(rest), 16, 32)
		if err != nil {
			return "", "", err
		}
		return strconv.FormatUint(n, 10), TypeDWord, nil

	case regtext.ValueTypeHex7:
		text := regtext.DecodeHexUTF16(rest)
		var items []string
		for _, s := range strings.Split(text, regtext.NUL) {
			if s != "" {
				items = append(items, s)
			}
		}
		return `@("` + strings.Join(items, `","`) + `")`, TypeMultiString, nil

	case regtext.ValueTypeHex2:
		text := regtext.DecodeHexUTF16(rest)
		return regtext.Quote + strings.ReplaceAll(text, regtext.NUL, "") + regtext.Quote, TypeExpandString, nil

	case regtext.ValueTypeBinary:
		return regtext.Quote + regtext.RemoveSeparators(rest) + regtext.Quote, TypeBinary, nil

	default:
		// quoted strings arrive with their quotes already stripped
		return "'" + rest + "'", TypeString, nil
	}
}
