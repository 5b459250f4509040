package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-munchkin/internal/registry"
	"github.com/vovakirdan/tui-munchkin/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Clear},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear scores"),
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

// ScoreRow is one line of the scoreboard.
type ScoreRow struct {
	GameID  string
	Title   string
	Score   int
	Updated string
	Games   int
	Average float64
}

const recentShown = 5

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     *storage.Store
	rows      []ScoreRow
	recent    []storage.GameRecord // of the selected row
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	err       error
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 18},
		{Title: "High Score", Width: 10},
		{Title: "Games", Width: 6},
		{Title: "Avg", Width: 6},
		{Title: "Set", Width: 18},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// ScoreRows merges registered variants with stored high scores. Variants
// without a score are listed with zero, and stored scores of unknown
// variants are kept so they can still be cleared.
func ScoreRows(games []registry.GameInfo, entries []storage.HighScoreEntry) []ScoreRow {
	byID := make(map[string]storage.HighScoreEntry, len(entries))
	for _, e := range entries {
		byID[e.GameID] = e
	}

	rows := make([]ScoreRow, 0, len(games)+len(entries))
	for _, g := range games {
		row := ScoreRow{GameID: g.ID, Title: g.Title, Updated: "-"}
		if e, ok := byID[g.ID]; ok {
			row.Score = e.Score
			row.Updated = e.UpdatedAt.Format("2006-01-02 15:04")
			delete(byID, g.ID)
		}
		rows = append(rows, row)
	}
	for _, e := range entries {
		if _, ok := byID[e.GameID]; !ok {
			continue
		}
		rows = append(rows, ScoreRow{
			GameID:  e.GameID,
			Title:   e.GameID,
			Score:   e.Score,
			Updated: e.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

// loadScores reads every high score and game count from the store.
func (m *ScoreboardModel) loadScores() {
	var entries []storage.HighScoreEntry
	m.err = nil
	if m.store != nil {
		entries, m.err = m.store.AllHighScores()
	}
	m.rows = ScoreRows(registry.List(), entries)

	rows := make([]table.Row, len(m.rows))
	for i := range m.rows {
		r := &m.rows[i]
		if m.store != nil {
			if st, err := m.store.Stats(r.GameID); err == nil {
				r.Games, r.Average = st.Games, st.Average
			}
		}
		rows[i] = table.Row{r.Title, fmt.Sprintf("%d", r.Score), fmt.Sprintf("%d", r.Games), fmt.Sprintf("%.0f", r.Average), r.Updated}
	}
	m.table.SetRows(rows)
	m.loadRecent()
}

// loadRecent fetches the latest games of the selected variant.
func (m *ScoreboardModel) loadRecent() {
	m.recent = nil
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.rows) {
		return
	}
	recent, err := m.store.RecentGames(m.rows[i].GameID, recentShown)
	if err != nil {
		m.err = err
		return
	}
	m.recent = recent
}

// recentLine summarises m.recent as "score (mazes)" pairs.
func (m ScoreboardModel) recentLine() string {
	if len(m.recent) == 0 {
		return "No games recorded yet."
	}
	parts := make([]string, len(m.recent))
	for i, g := range m.recent {
		parts[i] = fmt.Sprintf("%d (%d)", g.Score, g.Mazes)
	}
	return "Recent: " + strings.Join(parts, "  ")
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

		case key.Matches(msg, m.keys.Clear):
			m.clearSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	cursor := m.table.Cursor()
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != cursor {
		m.loadRecent()
	}
	return m, cmd
}

func (m *ScoreboardModel) clearSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.rows) {
		return
	}
	if err := m.store.ClearHighScore(m.rows[i].GameID); err != nil {
		m.err = err
		return
	}
	m.table.SetCursor(i)
	m.loadScores()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(centerText(dimStyle.Render("Scores database unavailable."), m.width))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.recentLine()), m.width))
	}
	b.WriteString("\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(centerText(errStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
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
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

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
