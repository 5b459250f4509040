package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-munchkin/internal/audio"
	"github.com/vovakirdan/tui-munchkin/internal/config"
	"github.com/vovakirdan/tui-munchkin/internal/core"
	"github.com/vovakirdan/tui-munchkin/internal/games/munchkin"
	"github.com/vovakirdan/tui-munchkin/internal/platform/tui"
	"github.com/vovakirdan/tui-munchkin/internal/registry"
	"github.com/vovakirdan/tui-munchkin/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

// addGameFlags registers the flags shared by every command that plays.
func addGameFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume (0-1)")
}

// session holds what stays open across games: storage, the log and audio.
type session struct {
	store    *storage.Store
	logger   *log.Logger
	player   *audio.Player
	preset   config.DifficultyPreset
	id       string // groups this run's games in the history
	closeLog func()
}

// openSession validates the flags and opens the shared resources. A missing
// database or audio device only degrades the session.
func openSession() (*session, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return nil, err
	}

	munchkin.SetConfigPath(flagConfig)
	munchkin.SetDifficultyPreset(preset)
	for _, g := range registry.List() {
		if _, err := munchkin.LoadSettings(g.ID, flagConfig, preset); err != nil {
			closeLog()
			return nil, fmt.Errorf("%s: %w", g.ID, err)
		}
	}

	s := &session{logger: logger, preset: preset, id: uuid.NewString(), closeLog: closeLog}
	logger.Debug("session opened", "session", s.id)

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.store = nil
	}

	if !flagMute {
		s.player = audio.NewPlayer(flagVolume, logger)
		if err := s.player.Start(); err != nil {
			s.player = nil
		}
	}
	return s, nil
}

// Close releases everything the session opened.
func (s *session) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	s.closeLog()
}

// play runs one variant until the player quits or returns to the title.
func (s *session) play(gameID string, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	if g, ok := game.(*munchkin.Game); ok && s.player != nil {
		g.SetAudio(s.player)
	}

	return tui.Run(game, tui.Options{Store: s.store, Logger: s.logger, Session: s.id}, cfg)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
