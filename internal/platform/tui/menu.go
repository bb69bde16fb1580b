package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store ScoreStore, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(m.keys, msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L I N E S"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-12s %s", item.Title, menuDimStyle.Render(item.Description))
		if i == m.cursor {
			line = "> " + menuItemStyle.Render(fmt.Sprintf("%-12s", item.Title)) + " " + item.Description
		}
		if item.Best > 0 {
			line += menuDimStyle.Render(fmt.Sprintf("  best %d", item.Best))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store ScoreStore, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
