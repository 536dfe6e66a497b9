package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

const (
	minWidthForPanel = 84 // Stats panel goes beside the table from here on
	panelWidth       = 26
	maxRuns          = 100 // Rows loaded per view
)

// runView selects which runs the table lists.
type runView int

const (
	viewBest runView = iota
	viewRecent
)

func (v runView) String() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	View    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.View, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Variant, k.View}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Variant: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		View:    key.NewBinding(key.WithKeys("v", "r"), key.WithHelp("v", "best/recent")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	wonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ScoreboardModel lists stored runs for one variant at a time.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	variant   int
	view      runView
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.Stats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	embedded  bool
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the best runs of the first
// registered variant. A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Dodged", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload queries the current variant and view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.variant].ID
		var err error
		if m.view == viewRecent {
			m.runs, err = m.store.RecentRuns(id, maxRuns)
		} else {
			m.runs, err = m.store.TopRuns(id, maxRuns)
		}
		if err != nil {
			m.runs = nil
		}
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
	}

	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows, numbered from 1.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			r.Outcome,
			FormatDuration(r.Duration),
			humanize.Time(r.CreatedAt),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.done()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.done()

		case key.Matches(msg, m.keys.Variant):
			if n := len(m.variants); n > 1 {
				step := 1
				if msg.String() == "left" || msg.String() == "h" {
					step = n - 1
				}
				m.variant = (m.variant + step) % n
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.String()
	if len(m.variants) > 0 {
		title += " - " + m.variants[m.variant].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	var body string
	if m.wide() {
		panel := boardBoxStyle.Width(panelWidth).Render(m.statsPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, boardBoxStyle.Render(m.tableContent()), "  ", panel)
	} else {
		body = centerText(StatsLine(m.stats), m.width) + "\n\n" + boardBoxStyle.Render(m.tableContent())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statsPanel lists the variant's aggregates, one per line.
func (m ScoreboardModel) statsPanel() string {
	st := m.stats
	if st == nil || st.Runs == 0 {
		return menuDimStyle.Render("No runs yet")
	}

	lines := []string{
		boardTitleStyle.Render("Stats"),
		"",
		fmt.Sprintf("Runs      %s", humanize.Comma(int64(st.Runs))),
		fmt.Sprintf("Won       %s", wonStyle.Render(strconv.Itoa(st.Wins))),
		fmt.Sprintf("Lost      %s", lostStyle.Render(strconv.Itoa(st.Losses()))),
		fmt.Sprintf("Best      %d dodged", st.BestScore),
		fmt.Sprintf("Average   %.1f", st.AvgScore),
	}
	if st.FastestWin > 0 {
		lines = append(lines, "Fastest   "+FormatDuration(st.FastestWin))
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, "Last      "+humanize.Time(st.LastPlayed))
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) tableContent() string {
	if len(m.runs) == 0 {
		return menuDimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nFinish a run to get on the board!")
	}
	return m.table.View()
}

// done ends a standalone scoreboard program; embedded ones leave it to the parent.
func (m ScoreboardModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// StatsLine summarizes a game's run history in one line.
func StatsLine(st *storage.Stats) string {
	if st == nil || st.Runs == 0 {
		return "No runs yet"
	}
	line := fmt.Sprintf("%s runs  ·  %d won  ·  best %d dodged  ·  avg %.1f",
		humanize.Comma(int64(st.Runs)), st.Wins, st.BestScore, st.AvgScore)
	if st.FastestWin > 0 {
		line += "  ·  fastest win " + FormatDuration(st.FastestWin)
	}
	return line
}

// FormatDuration formats a run length as seconds with one decimal.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
