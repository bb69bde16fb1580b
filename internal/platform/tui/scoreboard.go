package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 70  // Minimum width to show game list sidebar
	sidebarWidth       = 18  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreHistory is the part of storage the scoreboard reads.
type ScoreHistory interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

var _ ScoreHistory = (*storage.Store)(nil)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      ScoreHistory
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store ScoreHistory, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[0].ID)
	}
	return m
}

func (m *ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // header, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Moves),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.switchGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.gameCursor].ID)
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	scores := panelStyle.Render(m.statsLine() + "\n\n" + m.renderTableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", scores))
	} else {
		if len(m.games) > 0 {
			b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
			b.WriteString("\n")
		}
		b.WriteString(scores)
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, g := range m.games {
		if i == m.gameCursor {
			sidebar.WriteString(menuItemStyle.Render("> " + g.Title))
		} else {
			sidebar.WriteString("  " + g.Title)
		}
		sidebar.WriteString("\n")
	}
	return panelStyle.Width(sidebarWidth).Render(sidebar.String())
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return menuDimStyle.Render("No runs yet")
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.0f  Moves: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalMoves)
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No scores recorded yet.\nClear a line to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreHistory, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
