package regtext

import (
	"strings"
	"unicode"
)

// LineKind classifies a trimmed .reg line.
type LineKind int

const (
	LineValue   LineKind = iota // anything that is not a section header
	LineSection                 // starts with '['
)

// Line is one logical line of .reg text that survived trimming and skipping.
type Line struct {
	Number int      // 1-based physical line number (first line of a joined run)
	Text   string   // trimmed text
	Kind   LineKind // section header or value line
}

// ScanOptions controls how Scan splits text into lines.
type ScanOptions struct {
	// JoinContinuations merges a value line ending in '\' with the
	// following physical line, the way regedit wraps long hex payloads.
	// Off by default: every physical line stands on its own.
	JoinContinuations bool
}

// Scan splits text into trimmed lines, dropping blank lines and the
// "Windows Registry Editor" banner. Both \n and \r\n line endings are
// accepted; the \r is removed by trimming.
func Scan(text string, opts ScanOptions) []Line {
	physical := strings.Split(text, LF)
	lines := make([]Line, 0, len(physical))

	for i := 0; i < len(physical); i++ {
		trim := TrimLine(physical[i])
		if trim == "" || strings.HasPrefix(trim, RegFileBanner) {
			continue
		}

		line := Line{Number: i + 1, Text: trim, Kind: LineValue}
		if strings.HasPrefix(trim, KeyOpenBracket) {
			line.Kind = LineSection
			lines = append(lines, line)
			continue
		}

		if opts.JoinContinuations {
			for strings.HasSuffix(line.Text, Backslash) && i+1 < len(physical) {
				i++
				line.Text = strings.TrimSuffix(line.Text, Backslash) + TrimLine(physical[i])
			}
		}
		lines = append(lines, line)
	}

	return lines
}

// TrimLine removes surrounding whitespace, including a stray byte order mark
// left at the start of the first line.
func TrimLine(s string) string {
	return strings.TrimFunc(s, isTrimRune)
}

// IsBlank reports whether text holds nothing but whitespace.
func IsBlank(text string) bool {
	return TrimLine(text) == ""
}

func isTrimRune(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
