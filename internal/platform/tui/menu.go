package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slicer/internal/registry"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	creditsStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

var credits = []string{
	"Bubble Tea, Bubbles and Lip Gloss",
	"Wish and Charm Log",
	"Cobra",
	"modernc.org/sqlite",
	"gween easing",
	"gdata save files",
}

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// MenuModel is the mode picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	err       error
	credits   bool
}

// NewMenuModel lists the registered modes with their best scores. The cursor
// starts on lastMode when it is one of them.
func NewMenuModel(store *storage.Store, lastMode string, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	cursor := 0

	for i, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			// Best-effort: a broken database only hides the column.
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		if g.ID == lastMode {
			cursor = i
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd, Transition) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil, stay()
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (MenuModel, tea.Cmd, Transition) {
	if m.credits {
		// Any key closes the credits; ctrl+c still quits.
		if msg.String() == "ctrl+c" {
			return m, nil, Transition{To: SceneQuit}
		}
		m.credits = false
		return m, nil, stay()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m, nil, Transition{To: SceneQuit}

	case MenuActionCredits:
		m.credits = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			return m, nil, Transition{To: ScenePlay, GameID: m.items[m.cursor].GameID}
		}

	case MenuActionScoreboard:
		t := Transition{To: SceneScores}
		if len(m.items) > 0 {
			t.GameID = m.items[m.cursor].GameID
		}
		return m, nil, t
	}
	return m, nil, stay()
}

// View renders the menu, or the credits over it.
func (m MenuModel) View() string {
	if m.credits {
		return m.creditsView()
	}
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F R U I T   S L I C E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf(" %-12s best %6d ", item.Title, item.Best)
		if i == m.cursor {
			line = menuCursor.Render(line)
		} else {
			line = menuItemStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Choose  |  Enter: Play  |  Tab: Scores  |  C: Credits  |  Q: Quit"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render("Drag the mouse to slice. Don't cut the bombs. P pauses."), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) creditsView() string {
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("F R U I T   S L I C E R"))
	b.WriteString("\n\nBuilt with\n\n")
	for _, line := range credits {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render("Any key: Close"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, creditsStyle.Render(b.String()))
}

// ShowingCredits reports whether the credits pane is open.
func (m MenuModel) ShowingCredits() bool {
	return m.credits
}

// Cursor returns the highlighted item index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Items returns the listed modes.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
