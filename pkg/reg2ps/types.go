package reg2ps

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/reg2ps/internal/regtext"
)

// ValueType is the -Type argument passed to Set-ItemProperty.
type ValueType string

const (
	TypeDWord        ValueType = "DWord"
	TypeMultiString  ValueType = "MultiString"
	TypeExpandString ValueType = "ExpandString"
	TypeBinary       ValueType = "Binary"
	TypeString       ValueType = "String"
)

// CommandKind distinguishes the two commands a script is built from.
type CommandKind string

const (
	NewItem         CommandKind = "New-Item"
	SetItemProperty CommandKind = "Set-ItemProperty"
)

// Command is one generated PowerShell line.
type Command struct {
	Kind  CommandKind `json:"kind" yaml:"kind"`
	Line  int         `json:"line" yaml:"line"` // source line in the .reg text
	Path  string      `json:"path" yaml:"path"` // drive-form key path (HKLM:\...)
	Name  string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value string      `json:"value,omitempty" yaml:"value,omitempty"` // rendered PowerShell literal
	Type  ValueType   `json:"type,omitempty" yaml:"type,omitempty"`
}

// String renders the command without a trailing newline.
func (c Command) String() string {
	if c.Kind == NewItem {
		return fmt.Sprintf("New-Item -Path '%s' -Force", c.Path)
	}
	return fmt.Sprintf("Set-ItemProperty -Path '%s' -Name '%s' -Value %s -Type %s",
		c.Path, c.Name, c.Value, c.Type)
}

// Script is the result of converting one .reg document.
type Script struct {
	Commands []Command `json:"commands" yaml:"commands"`
}

// String renders every command on its own newline-terminated line.
func (s *Script) String() string {
	var b strings.Builder
	for _, c := range s.Commands {
		b.WriteString(c.String())
		b.WriteString(regtext.LF)
	}
	return b.String()
}

// WriteTo writes the rendered script to w.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Keys returns the number of New-Item commands.
func (s *Script) Keys() int { return s.count(NewItem) }

// Values returns the number of Set-ItemProperty commands.
func (s *Script) Values() int { return s.count(SetItemProperty) }

func (s *Script) count(kind CommandKind) int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Hive maps a registry root to its PowerShell drive.
type Hive struct {
	Name  string // HKEY_CURRENT_USER
	Drive string // HKCU:
}

// Hives returns the recognized registry roots in a fixed order.
func Hives() []Hive {
	out := make([]Hive, len(regtext.Roots))
	for i, r := range regtext.Roots {
		out[i] = Hive{Name: r.Name, Drive: r.Drive()}
	}
	return out
}

// DriveFor rewrites the hive prefix of a key path into its drive form,
// leaving the rest of the path untouched:
//
//	HKEY_CURRENT_USER\Software\Test -> HKCU:\Software\Test
func DriveFor(path string) (string, bool) {
	root, ok := regtext.MatchRoot(path)
	if !ok {
		return "", false
	}
	return root.Drive() + path[len(root.Name):], true
}
