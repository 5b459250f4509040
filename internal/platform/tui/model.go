package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
	"github.com/vovakirdan/tui-munchkin/internal/storage"
)

// Options carries the collaborators of a game session.
type Options struct {
	Store   *storage.Store // nil disables high score persistence
	Logger  *log.Logger    // nil discards log output
	Session string         // tags recorded games; empty picks a fresh ID
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	session    string
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	savedHigh  int
	quitting   bool
	backToMenu bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game and seeds it
// with the stored high score.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	cfg = cfg.WithDefaults(func() int64 { return time.Now().UnixNano() })

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := opts.Session
	if session == "" {
		session = uuid.NewString()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		session:    session,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(defaultHoldTTL),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}

	if m.store != nil {
		high, err := m.store.HighScore(game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "err", err)
		}
		m.savedHigh = high
		if aware, ok := game.(registry.HighScoreAware); ok {
			aware.SetHighScore(high)
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.saveHighScore(m.game.State().Score)
		return m, tea.Quit
	case IsDirection(action):
		m.held.press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.HighScore > m.savedHigh {
		m.saveHighScore(m.gameState.HighScore)
	}

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score, "mazes", m.gameState.Mazes, "high", m.gameState.HighScore)
		m.recordGame(m.gameState)
		m.saveHighScore(m.gameState.Score)
	}

	if result.Quit {
		m.backToMenu = true
		m.held.release()
		m.saveHighScore(m.gameState.Score)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveHighScore persists score when it beats the stored best.
func (m *Model) saveHighScore(score int) {
	if m.store == nil || score <= m.savedHigh {
		return
	}
	raised, err := m.store.SaveHighScore(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not save high score", "score", score, "err", err)
		return
	}
	if raised {
		m.logger.Info("new high score", "score", score)
	}
	m.savedHigh = score
}

// recordGame appends a finished game to the history.
func (m *Model) recordGame(st core.GameState) {
	if m.store == nil {
		return
	}
	if err := m.store.RecordGame(storage.GameRecord{
		GameID:  m.game.ID(),
		Session: m.session,
		Score:   st.Score,
		Mazes:   st.Mazes,
	}); err != nil {
		m.logger.Warn("could not record game", "err", err)
	}
}

// saveScreenshot writes the current screen to a text file and copies it to
// the clipboard when one is available.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)
	text := m.screen.String()

	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err != nil {
			m.logger.Debug("could not copy screenshot", "err", err)
		}
	}

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the game asked to return to the title screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game. It returns true
// when the player left for the title screen rather than quitting.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
