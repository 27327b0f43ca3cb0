package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/registry"
	"github.com/ainchor-labs/LevelForge/internal/storage"
)

// Model is the Bubble Tea model for running games.
type Model struct {
	game       registry.Game
	keys       *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	fatalErr   error
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	roundSaved bool // Whether the round result has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be initialized via Reset.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
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
		// Quitting mid-round still leaves a record of it.
		if !m.gameState.GameOver && m.gameState.Tick > 0 {
			m.saveRound(storage.OutcomeAbandoned)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Rebuild the simulation at the new dimensions. A mid-round resize
	// loses the round; the physics world cannot be resized in place.
	if !m.gameState.GameOver {
		if err := m.game.Reset(m.config); err != nil {
			m.fatalErr = err
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart on game over reseeds the run
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		if err := m.game.Reset(m.config); err != nil {
			m.fatalErr = err
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.roundSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score and round result on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if m.gameState.GameOver && !m.roundSaved {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.saveRound(outcome)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRound records how the current round went.
func (m *Model) saveRound(outcome string) {
	if m.store == nil || m.roundSaved {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRound(storage.RoundResult{
		GameID:        m.game.ID(),
		Generation:    m.gameState.Generation,
		Wave:          m.gameState.Wave,
		Score:         m.gameState.Score,
		TargetsScored: m.gameState.TargetsScored,
		Outcome:       outcome,
		DurationTicks: m.gameState.Tick,
	})
	m.roundSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".levelforge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

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

// Run initializes the game and starts the Bubble Tea program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("initialize %s: %w", game.ID(), err)
	}

	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(Model); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}
