// Package tui is an interactive terminal front end for the converter: .reg
// text on the left, the generated PowerShell on the right.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

// Pane represents which pane is focused
type Pane int

const (
	InputPane Pane = iota
	OutputPane
)

// Layout constants
const (
	defaultWidth  = 100
	defaultHeight = 30
	chromeHeight  = 3 // header, notification and help lines
	titleHeight   = 1
)

type noteKind int

const (
	noteNone noteKind = iota
	noteSuccess
	noteError
)

type notification struct {
	kind noteKind
	text string
}

// Options configures a Model.
type Options struct {
	Input             string // initial .reg text
	InputPath         string // shown in the header
	OutputPath        string // ctrl+s target, reg2ps.DefaultFileName when empty
	Header            string // generator comment written by ctrl+s
	JoinContinuations bool
	NoColor           bool

	// Clipboard receives the script on ctrl+y. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the main application model
type Model struct {
	opts   Options
	keys   KeyMap
	input  textarea.Model
	output viewport.Model
	help   help.Model

	focusedPane Pane
	width       int
	height      int
	showHelp    bool

	script *reg2ps.Script // last successful conversion
	note   notification
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	if opts.OutputPath == "" {
		opts.OutputPath = reg2ps.DefaultFileName
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	input := textarea.New()
	input.Placeholder = "Paste .reg content here"
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetValue(opts.Input)
	input.Focus()

	m := Model{
		opts:        opts,
		keys:        DefaultKeyMap(),
		input:       input,
		output:      viewport.New(0, 0),
		help:        help.New(),
		focusedPane: InputPane,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Run starts the terminal UI and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}

// Script returns the result of the last successful conversion, or nil.
func (m Model) Script() *reg2ps.Script { return m.script }

// FocusedPane returns the pane receiving keystrokes.
func (m Model) FocusedPane() Pane { return m.focusedPane }

func (m *Model) resize() {
	paneWidth := max(m.width/2-paneFrameWidth, 10)
	paneHeight := max(m.height-chromeHeight-paneFrameHeight-titleHeight, 3)

	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)
	m.output.Width = paneWidth
	m.output.Height = paneHeight
	m.help.Width = m.width
}

func (m *Model) notify(kind noteKind, text string) {
	m.note = notification{kind: kind, text: text}
}
