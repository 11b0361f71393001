package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/loop"
	"github.com/vovakirdan/fruit-slicer/internal/registry"
)

// PlayModel runs one game: it turns frame messages into fixed physics steps
// plus one render tick, and folds mouse events into the touch state.
type PlayModel struct {
	game     registry.Game
	screen   *core.Screen
	stepper  *loop.Stepper
	config   core.RuntimeConfig
	input    core.InputFrame
	touch    core.Touch
	state    core.GameState
	keys     *KeyMapper
	renderer *ScreenRenderer
	logger   *log.Logger
	gen      int
}

// NewPlayModel creates the play scene for game. gen must match the Gen of
// the FrameMsgs this scene accepts.
func NewPlayModel(game registry.Game, cfg core.RuntimeConfig, gen int, sr *ScreenRenderer, logger *log.Logger) PlayModel {
	dt, maxFrame := game.Timestep()
	return PlayModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		stepper:  loop.NewStepper(dt, maxFrame),
		config:   cfg,
		input:    core.NewInputFrame(),
		keys:     NewKeyMapper(),
		renderer: sr,
		logger:   logger,
		gen:      gen,
	}
}

// Init starts the round and the frame loop.
func (m PlayModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("playing", "mode", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return frameCmd(m.config.TickRate, m.gen)
}

// Update handles one message.
func (m PlayModel) Update(msg tea.Msg) (PlayModel, tea.Cmd, Transition) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, &m.touch)
		return m, nil, stay()

	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil, stay()

	case FrameMsg:
		if msg.Gen != m.gen {
			return m, nil, stay()
		}
		return m.handleFrame(msg.Time)
	}
	return m, nil, stay()
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (PlayModel, tea.Cmd, Transition) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("cannot save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil, stay()
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		return m, nil, Transition{To: SceneQuit}
	}

	if m.state.GameOver {
		switch action {
		case core.ActionConfirm:
			return m, nil, Transition{To: SceneNameEntry, GameID: m.game.ID(), Score: m.state.Score}
		case core.ActionBack:
			return m, nil, Transition{To: SceneMenu}
		case core.ActionRestart:
			m.restart()
		}
		return m, nil, stay()
	}

	switch action {
	case core.ActionPause:
		m.input.Set(core.ActionPause)
	case core.ActionBack:
		if m.state.Paused {
			return m, nil, Transition{To: SceneMenu}
		}
	}
	return m, nil, stay()
}

// handleFrame runs the physics steps owed since the last frame and renders.
func (m PlayModel) handleFrame(now time.Time) (PlayModel, tea.Cmd, Transition) {
	wasOver := m.state.GameOver

	alpha, _ := m.stepper.AdvanceTo(now, m.game.PhysicsTick)
	m.input.Touch = m.touch
	m.game.RenderTick(core.Frame{Alpha: alpha, Input: m.input.Clone()}, m.screen)
	m.input.Clear()
	m.state = m.game.State()

	if m.state.GameOver && !wasOver {
		m.logger.Debug("game over shown", "mode", m.game.ID(), "score", m.state.Score)
	}
	return m, frameCmd(m.config.TickRate, m.gen), stay()
}

func (m *PlayModel) restart() {
	m.config.Seed = 0
	m.game.Reset(m.config)
	m.stepper.Reset()
	m.state = m.game.State()
	m.touch = core.Touch{}
	m.input.Clear()
	m.logger.Debug("restart", "mode", m.game.ID())
}

// saveScreenshot writes the current screen as plain text.
func (m PlayModel) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".slicer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View returns the last rendered frame.
func (m PlayModel) View() string {
	return m.renderer.Render(m.screen)
}

// State returns the game state as of the last frame.
func (m PlayModel) State() core.GameState {
	return m.state
}
