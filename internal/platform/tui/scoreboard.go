package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80  // Minimum width to show the stats panel
	statsWidth       = 24  // Width of the stats panel
	tableMinWidth    = 50  // Minimum table width
	maxScores        = 100 // Max scores to load
)

// everyone is the player filter that shows all scores.
const everyone = ""

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPlayer key.Binding
	PrevPlayer key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevPlayer, k.NextPlayer, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPlayer, k.NextPlayer},
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
		NextPlayer: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next player"),
		),
		PrevPlayer: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left", "prev player"),
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

// ScoreboardModel shows one game's best scores, its totals and a filter
// that narrows the table to a single player.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	scores    []storage.ScoreEntry // Best first, unfiltered
	stats     *storage.GameStats
	players   []string // Filter choices; players[0] is everyone
	filter    int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
	showStats bool
}

// NewScoreboardModel creates a scoreboard for the given game.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	title := gameID
	if info, ok := registry.Info(gameID); ok {
		title = info.Title
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:    gameID,
		title:     title,
		store:     store,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized for the current layout.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4 // Margins
	if m.showStats {
		tableWidth -= statsWidth + 3 // Panel + border + gap
	}

	// Give spare room to the player column
	if spare := tableWidth - tableMinWidth; spare > 0 {
		columns[3].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-10), // Header, filter line, help and margins
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

// load reads scores and totals from the store and rebuilds the filter list.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	m.players = []string{everyone}
	m.filter = 0

	if m.store != nil {
		if scores, err := m.store.TopScores(m.gameID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}

	seen := make(map[string]bool)
	for _, s := range m.scores {
		name := playerName(s.Player)
		if !seen[name] {
			seen[name] = true
			m.players = append(m.players, name)
		}
	}

	m.updateTableRows()
}

// playerName is how a score's player shows in the table and filter.
func playerName(player string) string {
	if player == "" {
		return "-"
	}
	return player
}

// Filter returns the selected player, or "" when all scores are shown.
func (m ScoreboardModel) Filter() string {
	return m.players[m.filter]
}

// updateTableRows fills the table with the scores that pass the filter.
// Ranks stay those of the unfiltered list.
func (m *ScoreboardModel) updateTableRows() {
	want := m.Filter()
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		name := playerName(s.Player)
		if want != everyone && name != want {
			continue
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			name,
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycleFilter(delta int) {
	n := len(m.players)
	m.filter = ((m.filter+delta)%n + n) % n
	m.updateTableRows()
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

		case key.Matches(msg, m.keys.NextPlayer):
			m.cycleFilter(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevPlayer):
			m.cycleFilter(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.title, m.width)))
	b.WriteString("\n\n")

	filter := "everyone"
	if m.Filter() != everyone {
		filter = m.Filter()
	}
	filterStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(filterStyle.Render(centerText(fmt.Sprintf("Player: < %s >", filter), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showStats {
		panel := boxStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", panel))
	} else {
		b.WriteString(centerText(m.statsSummary(), m.width))
		b.WriteString("\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the totals panel of the wide layout.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString("No games yet")
		return b.String()
	}

	rows := [][2]string{
		{"Games", fmt.Sprintf("%d", m.stats.GamesCount)},
		{"Best", fmt.Sprintf("%d", m.stats.HighScore)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
		{"Lines", fmt.Sprintf("%d", m.stats.TotalLines)},
	}
	if !m.stats.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last", m.stats.LastPlayed.Format("Jan 02 15:04")})
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-8s %s\n", row[0], row[1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// statsSummary is the one-line form of the totals for narrow terminals.
func (m ScoreboardModel) statsSummary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("best %d | avg %.0f | lines %d | %d games",
		m.stats.HighScore, m.stats.AvgScore, m.stats.TotalLines, m.stats.GamesCount)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
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

// RunScoreboard runs the scoreboard screen for one game.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, gameID string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
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
