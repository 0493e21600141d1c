package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		return overlay.New(
			helpView{model: &m},
			mainView{model: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		).View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderInput(), m.renderOutput()),
		m.renderNotification(),
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader() string {
	title := m.style(headerStyle).Render("Registry to PowerShell")
	if m.opts.InputPath == "" {
		return title
	}
	return title + " " + m.opts.InputPath
}

func (m Model) renderInput() string {
	return m.pane(InputPane).Render(
		m.style(paneTitleStyle).Render("REG input") + "\n" + m.input.View(),
	)
}

func (m Model) renderOutput() string {
	return m.pane(OutputPane).Render(
		m.style(paneTitleStyle).Render("PowerShell output") + "\n" + m.output.View(),
	)
}

func (m Model) renderNotification() string {
	switch m.note.kind {
	case noteSuccess:
		return m.style(successStyle).Render(m.note.text)
	case noteError:
		return m.style(errorStyle).Render(m.note.text)
	default:
		return ""
	}
}

func (m Model) pane(p Pane) lipgloss.Style {
	if p == m.focusedPane {
		return m.style(activePaneStyle)
	}
	return m.style(paneStyle)
}

// style drops colors when the UI runs with NoColor.
func (m Model) style(s lipgloss.Style) lipgloss.Style {
	if !m.opts.NoColor {
		return s
	}
	return s.UnsetForeground().UnsetBackground().UnsetBorderForeground()
}

// mainView and helpView adapt Model for the overlay, which composes two
// tea.Models. Neither handles messages; the parent Model does.
type mainView struct{ model *Model }

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.model.renderMain() }

type helpView struct{ model *Model }

func (v helpView) Init() tea.Cmd                       { return nil }
func (v helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v helpView) View() string {
	m := v.model
	full := m.help
	full.ShowAll = true
	return m.style(helpBoxStyle).Render(
		m.style(helpTitleStyle).Render("Keyboard shortcuts") + "\n" + full.View(m.keys),
	)
}
