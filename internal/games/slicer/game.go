// Package slicer implements the fruit slicing game: fruit and bombs are
// thrown in arcs under gravity and the player cuts them by dragging.
package slicer

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/registry"
	"github.com/vovakirdan/fruit-slicer/internal/render"
)

// Package-level settings applied to games created after they are set.
var (
	settingsMu sync.RWMutex
	configPath string
	logger     *log.Logger
)

// SetConfigPath sets the config file used by new games. Empty means the
// default search path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

func settings() (string, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, logger
}

var (
	repoOnce sync.Once
	repo     *assets.Repository
	repoErr  error
)

// images returns the shared sprite repository.
func images() (*assets.Repository, error) {
	repoOnce.Do(func() {
		repo, repoErr = assets.NewRepository()
	})
	return repo, repoErr
}

func init() {
	for _, preset := range config.Presets {
		registry.Register(string(preset), func() (registry.Game, error) {
			return New(preset)
		})
	}
}

// Game adapts a Session to the platform's registry.Game interface for one
// difficulty mode.
type Game struct {
	preset  config.DifficultyPreset
	cfg     config.SlicerConfig
	mode    config.ModeConfig
	session *Session
	canvas  *render.Canvas
}

// New creates a game for a difficulty preset, loading the config and every
// sprite up front.
func New(preset config.DifficultyPreset) (*Game, error) {
	path, l := settings()

	cfg, err := config.LoadSlicer(path)
	if err != nil {
		return nil, err
	}
	mode := config.ApplySlicerPreset(&cfg, preset)

	repo, err := images()
	if err != nil {
		return nil, err
	}

	session, err := NewSession(cfg, repo, 0)
	if err != nil {
		return nil, err
	}
	if l != nil {
		session.SetLogger(l.With("mode", string(preset)))
	}

	return &Game{
		preset:  preset,
		cfg:     cfg,
		mode:    mode,
		session: session,
	}, nil
}

// ID returns the preset name.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the mode title from the config.
func (g *Game) Title() string {
	if g.mode.Title == "" {
		return string(g.preset)
	}
	return g.mode.Title
}

// Session returns the underlying round.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new round with the mode's bomb probability and multiplier.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session.Seed(seed)
	g.session.Start(g.mode.BombProbability, g.mode.ScoreMultiplier)
}

// Timestep returns the configured physics step and frame clamp.
func (g *Game) Timestep() (time.Duration, time.Duration) {
	return g.cfg.PhysicsStep(), g.cfg.MaxFrame()
}

// PhysicsTick advances the round by one fixed step.
func (g *Game) PhysicsTick(t, dt float64) {
	g.session.PhysicsTick(t, dt)
}

// RenderTick maps the frame's touch from screen cells to display units,
// handles the pause key, and renders the round into dst.
func (g *Game) RenderTick(frame core.Frame, dst *core.Screen) {
	switch {
	case g.canvas == nil || g.canvas.Screen() != dst:
		g.canvas = render.NewCanvas(dst, g.cfg.Display.Width, g.cfg.Display.Height)
	case dst.Width() != g.canvas.Viewport().Cols || dst.Height() != g.canvas.Viewport().Rows:
		g.canvas.Resize(dst.Width(), dst.Height())
	}

	if frame.Input.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	touch := frame.Input.Touch
	vp := g.canvas.Viewport()
	p := vp.ClampWorld(vp.ToWorld(touch.X, touch.Y))
	frame.Input.Touch = core.Touch{Pressed: touch.Pressed, X: int(p.X), Y: int(p.Y)}

	g.session.RenderTick(frame, g.canvas)
}

// State returns the round state.
func (g *Game) State() core.GameState {
	return g.session.State()
}
