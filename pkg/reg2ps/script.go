package reg2ps

import (
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultHeader is the generator comment written above saved scripts.
	DefaultHeader = "Script generated with reg2ps"

	// DefaultFileName is the file name used when a script is saved without one.
	DefaultFileName = "converted-script.ps1"

	commentPrefix = "# "
)

// WriteScriptFile writes s the way saved .ps1 files are laid out: the header
// as a comment line, a blank line, then the commands. An empty header writes
// the commands alone.
func WriteScriptFile(w io.Writer, s *Script, header string) error {
	if header = strings.TrimSpace(header); header != "" {
		if !strings.HasPrefix(header, "#") {
			header = commentPrefix + header
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
			return err
		}
	}
	_, err := s.WriteTo(w)
	return err
}

// FileContents returns what WriteScriptFile would write.
func FileContents(s *Script, header string) string {
	var b strings.Builder
	_ = WriteScriptFile(&b, s, header)
	return b.String()
}
