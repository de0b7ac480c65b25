package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randompac/internal/core"
	"github.com/vovakirdan/randompac/internal/registry"
	"github.com/vovakirdan/randompac/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      bool // Whether the outcome of the current game has been stored
}

// NewModel resets the game and wraps it in a Bubble Tea model. Reset
// warnings are logged; store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, player string, cfg core.RuntimeConfig) Model {
	game.Reset(cfg)
	if w, ok := game.(registry.Warner); ok && logger != nil {
		for _, err := range w.Warnings() {
			logger.Warn("using defaults", "game", game.ID(), "player", player, "error", err)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		player:     player,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The game keeps running; its
// renderer adapts the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks. The game gets its own copy of the
// frame, which is cleared here afterwards.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.saved:
		m.saveOutcome()
		m.saved = true
	case !m.gameState.GameOver:
		// A restart began a new game
		m.saved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveOutcome stores the finished game. Failures are logged, play goes on.
func (m *Model) saveOutcome() {
	reporter, ok := m.game.(registry.OutcomeReporter)
	if !ok || m.store == nil {
		return
	}
	outcome, ok := reporter.Outcome()
	if !ok {
		return
	}
	id, err := m.store.SaveSession(storage.NewRecord(m.player, outcome))
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Error("could not save session", "player", m.player, "error", err)
		return
	}
	m.logger.Info("session saved", "id", id, "player", m.player, "score", outcome.Score, "won", outcome.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".randompac", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local player.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, player string, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
