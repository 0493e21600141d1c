package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/reg2ps/internal/logger"
	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

const (
	msgCopied        = "Output copied to clipboard!"
	msgNothingToCopy = "Nothing to copy. Convert some input first."
	msgNothingToSave = "Nothing to save. Convert some input first."
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Convert):
			m.convert()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyOutput()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			return m, m.toggleFocus()
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == InputPane {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

// convert replaces the output with the script for the current input. A failed
// conversion leaves the previous output in place.
func (m *Model) convert() {
	script, err := reg2ps.ParseWithOptions(m.input.Value(), reg2ps.Options{
		JoinContinuations: m.opts.JoinContinuations,
	})
	if err != nil {
		var convErr *reg2ps.Error
		if errors.As(err, &convErr) {
			logger.Debug("conversion failed", "kind", convErr.Kind.String(), "line", convErr.Line)
		}
		m.notify(noteError, err.Error())
		return
	}

	m.script = script
	m.output.SetContent(script.String())
	m.output.GotoTop()
	m.notify(noteSuccess, fmt.Sprintf("Converted %d keys and %d values", script.Keys(), script.Values()))
}

func (m *Model) copyOutput() {
	if m.script == nil {
		m.notify(noteError, msgNothingToCopy)
		return
	}
	if err := m.opts.Clipboard(m.script.String()); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.notify(noteError, fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.notify(noteSuccess, msgCopied)
}

func (m *Model) save() {
	if m.script == nil {
		m.notify(noteError, msgNothingToSave)
		return
	}
	data := reg2ps.FileContents(m.script, m.opts.Header)
	if err := os.WriteFile(m.opts.OutputPath, []byte(data), 0o644); err != nil {
		logger.Warn("save failed", "path", m.opts.OutputPath, "error", err)
		m.notify(noteError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	logger.Info("script saved", "path", m.opts.OutputPath)
	m.notify(noteSuccess, "Saved to "+m.opts.OutputPath)
}

func (m *Model) clear() {
	m.input.Reset()
	m.output.SetContent("")
	m.script = nil
	m.note = notification{}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focusedPane == InputPane {
		m.input.Blur()
		m.focusedPane = OutputPane
		return nil
	}
	m.focusedPane = InputPane
	return m.input.Focus()
}
