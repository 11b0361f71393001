package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-slicer/internal/prefs"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var (
	entryScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	entryBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// NameEntryConfig holds what the name entry scene needs.
type NameEntryConfig struct {
	Store    *storage.Store
	Prefs    *prefs.Store
	Logger   *log.Logger
	GameID   string
	Title    string
	Score    int
	Initials string
	Width    int
	Height   int
}

// NameEntryModel asks for the player's initials after a round and records
// the score.
type NameEntryModel struct {
	cfg   NameEntryConfig
	input textinput.Model
	rank  int
	err   error
}

// NewNameEntryModel creates the scene with the input prefilled.
func NewNameEntryModel(cfg NameEntryConfig) NameEntryModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 1
	ti.Prompt = "> "
	ti.SetValue(cfg.Initials)
	ti.Focus()

	m := NameEntryModel{cfg: cfg, input: ti}
	if cfg.Store != nil {
		if rank, err := cfg.Store.Rank(cfg.GameID, cfg.Score); err == nil {
			m.rank = rank
		}
	}
	return m
}

// Init starts the cursor blink.
func (m NameEntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message.
func (m NameEntryModel) Update(msg tea.Msg) (NameEntryModel, tea.Cmd, Transition) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			return m, nil, Transition{To: SceneQuit}
		case "esc":
			return m, nil, Transition{To: SceneMenu}
		case "enter":
			if err := m.submit(); err != nil {
				m.err = err
				return m, nil, stay()
			}
			return m, nil, Transition{To: SceneMenu}
		}
	}
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width, m.cfg.Height = ws.Width, ws.Height
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, stay()
}

// submit saves the score and remembers the initials.
func (m NameEntryModel) submit() error {
	name := storage.NormalizeName(m.input.Value())
	if _, err := m.cfg.Store.SaveScore(m.cfg.GameID, name, m.cfg.Score); err != nil {
		m.cfg.Logger.Error("cannot save score", "mode", m.cfg.GameID, "score", m.cfg.Score, "error", err)
		return err
	}
	m.cfg.Logger.Info("score saved", "mode", m.cfg.GameID, "name", name, "score", m.cfg.Score)

	if name != storage.AnonymousName {
		if err := m.cfg.Prefs.Update(func(p *prefs.Prefs) { p.Initials = name }); err != nil {
			m.cfg.Logger.Warn("cannot save preferences", "error", err)
		}
	}
	return nil
}

// Value returns the current input text.
func (m NameEntryModel) Value() string {
	return m.input.Value()
}

// View renders the entry box.
func (m NameEntryModel) View() string {
	var b strings.Builder
	b.WriteString("GAME OVER\n\n")
	fmt.Fprintf(&b, "%s  score %s\n", m.cfg.Title, entryScoreStyle.Render(fmt.Sprintf("%d", m.cfg.Score)))
	if m.rank > 0 {
		fmt.Fprintf(&b, "You place #%d\n", m.rank)
	}
	b.WriteString("\nEnter your initials:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\nEnter: Save  |  Esc: Skip")
	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(menuErrStyle.Render(m.err.Error()))
	}

	box := entryBoxStyle.Render(b.String())
	return lipgloss.Place(m.cfg.Width, m.cfg.Height, lipgloss.Center, lipgloss.Center, box)
}
