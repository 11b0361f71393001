package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-slicer/internal/registry"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

// boardRows is how many entries a leaderboard page loads.
const boardRows = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// boardKeys are the leaderboard bindings. They double as the help bar.
type boardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the leaderboard of one mode at a time.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []registry.GameInfo
	mode   int
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error

	table  table.Model
	help   help.Model
	keys   boardKeys
	width  int
	height int
}

// NewScoreboardModel opens the leaderboard on gameID, or on the first mode
// when gameID is not registered.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	for i, g := range m.modes {
		if g.ID == gameID {
			m.mode = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 12
	if m.width > 60 {
		dateW = 18
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: storage.MaxNameLen + 2},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current mode's scores and stats into the table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.GameID()
		m.scores, m.err = m.store.TopScores(id, boardRows)
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next (+1) or previous (-1) mode, wrapping around.
func (m *ScoreboardModel) step(d int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + d + len(m.modes)) % len(m.modes)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles one message.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd, Transition) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, nil, Transition{To: SceneQuit}
		case key.Matches(msg, m.keys.Back):
			return m, nil, Transition{To: SceneMenu}
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil, stay()
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil, stay()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil, stay()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd, stay()
}

// View renders the tabs, the table and the help bar.
func (m ScoreboardModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(m.body())))
	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(menuHintStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if len(m.modes) > 0 && lipgloss.Width(line) > m.width {
		return fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return boardNoteStyle.Render("Scores are not being recorded.")
	case m.err != nil:
		return boardNoteStyle.Render("Cannot read scores:\n" + m.err.Error())
	case len(m.scores) == 0:
		return boardNoteStyle.Render("No scores recorded yet.\nSlice some fruit to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  |  best %d  |  average %.1f  |  last played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Local().Format("Jan 02"))
}

// GameID returns the mode being shown, or "" when none are registered.
func (m ScoreboardModel) GameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// Scores returns the loaded rows.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// Stats returns the aggregate line's data, nil before anything was saved.
func (m ScoreboardModel) Stats() *storage.GameStats {
	return m.stats
}
