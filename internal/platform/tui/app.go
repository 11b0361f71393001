package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/prefs"
	"github.com/vovakirdan/fruit-slicer/internal/registry"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

// Scene identifies which screen the app is showing.
type Scene int

const (
	SceneNone Scene = iota // stay on the current scene
	SceneMenu
	ScenePlay
	SceneNameEntry
	SceneScores
	SceneQuit
)

// String returns the scene name for logs.
func (s Scene) String() string {
	switch s {
	case SceneNone:
		return "none"
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneNameEntry:
		return "name-entry"
	case SceneScores:
		return "scores"
	case SceneQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transition is what a scene's update asks the app to do next.
// The zero value keeps the current scene.
type Transition struct {
	To     Scene
	GameID string
	Score  int
}

func stay() Transition { return Transition{} }

// Options configures an AppModel.
type Options struct {
	Store  *storage.Store // nil disables the leaderboard
	Prefs  *prefs.Store   // nil disables remembered choices
	Logger *log.Logger    // nil discards logs

	// Config carries the initial terminal size, frame rate and seed.
	Config core.RuntimeConfig

	// GameID, when set, skips the menu and starts that mode.
	GameID string

	// Player prefills the name entry when no initials were remembered.
	Player string

	// Renderer styles output; SSH sessions pass their own.
	Renderer *lipgloss.Renderer
}

// AppModel is the top-level Bubble Tea model. It owns the scene state and
// everything scenes share; each scene's update returns the next Transition.
type AppModel struct {
	opts     Options
	logger   *log.Logger
	renderer *ScreenRenderer
	scene    Scene
	width    int
	height   int
	gen      int
	quitting bool

	menu   MenuModel
	play   PlayModel
	entry  NameEntryModel
	scores ScoreboardModel
}

// NewAppModel creates the app on its menu scene, or on the play scene when
// opts.GameID is set.
func NewAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = DefaultFPS
	}
	def := core.DefaultConfig()
	if opts.Config.ScreenW <= 0 {
		opts.Config.ScreenW = def.ScreenW
	}
	if opts.Config.ScreenH <= 0 {
		opts.Config.ScreenH = def.ScreenH
	}

	m := AppModel{
		opts:     opts,
		logger:   opts.Logger,
		renderer: NewScreenRenderer(opts.Renderer),
		width:    opts.Config.ScreenW,
		height:   opts.Config.ScreenH,
	}
	m.menu = NewMenuModel(opts.Store, m.lastMode(), m.width, m.height)
	m.scene = SceneMenu
	return m
}

// Init starts the first scene.
func (m AppModel) Init() tea.Cmd {
	if m.opts.GameID != "" {
		return func() tea.Msg { return Transition{To: ScenePlay, GameID: m.opts.GameID} }
	}
	return m.menu.Init()
}

// Update routes msg to the active scene and applies its transition.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Transition:
		return m.enter(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.opts.Config.ScreenW, m.opts.Config.ScreenH = msg.Width, msg.Height
	}

	var cmd tea.Cmd
	var t Transition
	switch m.scene {
	case SceneMenu:
		m.menu, cmd, t = m.menu.Update(msg)
	case ScenePlay:
		m.play, cmd, t = m.play.Update(msg)
	case SceneNameEntry:
		m.entry, cmd, t = m.entry.Update(msg)
	case SceneScores:
		m.scores, cmd, t = m.scores.Update(msg)
	}

	if t.To == SceneNone {
		return m, cmd
	}
	next, enterCmd := m.enter(t)
	return next, tea.Batch(cmd, enterCmd)
}

// enter switches to the scene named by t.
func (m AppModel) enter(t Transition) (AppModel, tea.Cmd) {
	m.logger.Debug("scene", "from", m.scene, "to", t.To, "mode", t.GameID)

	switch t.To {
	case SceneMenu:
		m.scene = SceneMenu
		m.menu = NewMenuModel(m.opts.Store, m.lastMode(), m.width, m.height)
		return m, m.menu.Init()

	case ScenePlay:
		game, err := registry.Create(t.GameID)
		if err != nil {
			m.logger.Error("cannot start round", "mode", t.GameID, "error", err)
			m.scene = SceneMenu
			m.menu = NewMenuModel(m.opts.Store, m.lastMode(), m.width, m.height)
			m.menu.err = err
			return m, nil
		}
		m.gen++
		cfg := m.opts.Config
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
		m.play = NewPlayModel(game, cfg, m.gen, m.renderer, m.logger)
		m.scene = ScenePlay
		// Only the first round uses the configured seed.
		m.opts.Config.Seed = 0
		if err := m.opts.Prefs.Update(func(p *prefs.Prefs) { p.LastMode = t.GameID }); err != nil {
			m.logger.Warn("cannot save preferences", "error", err)
		}
		return m, m.play.Init()

	case SceneNameEntry:
		if m.opts.Store == nil || t.Score <= 0 {
			return m.enter(Transition{To: SceneMenu})
		}
		m.scene = SceneNameEntry
		m.entry = NewNameEntryModel(NameEntryConfig{
			Store:    m.opts.Store,
			Prefs:    m.opts.Prefs,
			Logger:   m.logger,
			GameID:   t.GameID,
			Title:    titleFor(t.GameID),
			Score:    t.Score,
			Initials: m.initials(),
			Width:    m.width,
			Height:   m.height,
		})
		return m, m.entry.Init()

	case SceneScores:
		m.scene = SceneScores
		m.scores = NewScoreboardModel(m.opts.Store, t.GameID, m.width, m.height)
		return m, m.scores.Init()

	case SceneQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the active scene.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.scene {
	case ScenePlay:
		return m.play.View()
	case SceneNameEntry:
		return m.entry.View()
	case SceneScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Scene returns the active scene.
func (m AppModel) Scene() Scene {
	return m.scene
}

func (m AppModel) lastMode() string {
	p, err := m.opts.Prefs.Load()
	if err != nil {
		m.logger.Warn("cannot load preferences", "error", err)
	}
	return p.LastMode
}

// initials returns the remembered initials, falling back to the player name.
func (m AppModel) initials() string {
	p, err := m.opts.Prefs.Load()
	if err != nil {
		m.logger.Warn("cannot load preferences", "error", err)
	}
	if p.Initials != "" {
		return p.Initials
	}
	if m.opts.Player == "" {
		return ""
	}
	return storage.NormalizeName(m.opts.Player)
}

// titleFor returns the registered title of a mode, or its ID.
func titleFor(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

// Run starts a local Bubble Tea program with mouse tracking.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
