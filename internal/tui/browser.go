// Package tui is a read-only browser for saved session files. It shows an
// overview page with net totals and settlements, plus one page per game.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bonusly-poker/internal/export"
)

// Browser pages through a saved session. Page zero is the session
// overview; page n is the n-th recorded game.
type Browser struct {
	env      *export.Envelope
	page     int
	viewport viewport.Model
	width    int
	height   int
	styles   *Styles
	quitting bool
}

// NewBrowser creates a browser over a loaded session file.
func NewBrowser(env *export.Envelope) *Browser {
	vp := viewport.New(80, 24)
	m := &Browser{
		env:      env,
		viewport: vp,
		styles:   DefaultStyles(),
	}
	m.viewport.SetContent(m.pageContent())
	return m
}

// Init implements tea.Model.
func (m *Browser) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events.
func (m *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "right", "l", "tab":
			m.setPage(m.page + 1)
		case "left", "h", "shift+tab":
			m.setPage(m.page - 1)
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "down", "j":
			m.viewport.ScrollDown(1)
		case "pgup", "b":
			m.viewport.HalfPageUp()
		case "pgdown", "f":
			m.viewport.HalfPageDown()
		case "home", "g":
			m.viewport.GotoTop()
		case "end", "G":
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the current page inside header and footer chrome.
func (m *Browser) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Header.Render(m.title()),
		m.styles.Pane.Render(m.viewport.View()),
		m.styles.Footer.Render("←/→ page  ↑/↓ scroll  q quit"),
	)
}

func (m *Browser) title() string {
	if m.page == 0 {
		return fmt.Sprintf(" Session overview (%d games) ", len(m.env.Games))
	}
	return fmt.Sprintf(" Game %d of %d ", m.page, len(m.env.Games))
}

// setPage clamps to the valid page range and refreshes the viewport.
func (m *Browser) setPage(page int) {
	page = max(0, min(page, len(m.env.Games)))
	if page == m.page {
		return
	}
	m.page = page
	m.viewport.SetContent(m.pageContent())
	m.viewport.GotoTop()
}

func (m *Browser) pageContent() string {
	if m.page == 0 {
		return RenderOverview(m.env, m.styles)
	}
	return RenderGame(m.env, m.page-1, m.styles)
}

func (m *Browser) updateDimensions() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// Reserve rows for the header, footer and pane border.
	m.viewport.Width = max(20, m.width-4)
	m.viewport.Height = max(5, m.height-6)
	m.viewport.SetContent(m.pageContent())
}

// Run opens the browser in the alternate screen and blocks until quit.
func Run(env *export.Envelope) error {
	program := tea.NewProgram(NewBrowser(env), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running session browser: %w", err)
	}
	return nil
}
