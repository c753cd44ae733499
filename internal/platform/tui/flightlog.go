package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/storage"
)

// maxFlights is the maximum number of flight records to load.
const maxFlights = 100

// FlightLogKeyMap defines the key bindings for the flight log screen.
type FlightLogKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FlightLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k FlightLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultFlightLogKeyMap returns default key bindings.
func DefaultFlightLogKeyMap() FlightLogKeyMap {
	return FlightLogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FlightLogModel is the Bubble Tea model for the flight log screen.
type FlightLogModel struct {
	store    *storage.Store
	flights  []storage.FlightEntry
	stats    *storage.FlightStats
	table    table.Model
	help     help.Model
	keys     FlightLogKeyMap
	width    int
	height   int
	quitting bool
}

// NewFlightLogModel creates a new flight log model.
func NewFlightLogModel(store *storage.Store, width, height int) FlightLogModel {
	h := help.New()
	h.ShowAll = false

	m := FlightLogModel{
		store:  store,
		keys:   DefaultFlightLogKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadFlights()

	return m
}

// createTable creates the flight table with appropriate columns.
func (m *FlightLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Outcome", Width: 8},
		{Title: "Detail", Width: 24},
		{Title: "Dmg", Width: 5},
		{Title: "Sci", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
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

// loadFlights loads recent flights and aggregate stats from storage.
func (m *FlightLogModel) loadFlights() {
	if m.store == nil {
		m.flights = nil
		m.updateTableRows()
		return
	}

	flights, err := m.store.RecentFlights(maxFlights)
	if err != nil {
		m.flights = nil
	} else {
		m.flights = flights
	}
	if stats, err := m.store.GetFlightStats(); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows fills the table with current flight entries.
func (m *FlightLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.flights))
	for i, f := range m.flights {
		detail := f.Cause
		if f.Outcome == "landed" {
			detail = fmt.Sprintf("touchdown %.1f m/s", f.LandingSpeed)
		}
		rows[i] = table.Row{
			f.CreatedAt.Format("Jan 02 15:04"),
			f.Outcome,
			detail,
			fmt.Sprintf("%.0f%%", f.Damage),
			fmt.Sprintf("%d", f.Science),
			fmt.Sprintf("%d", f.Score),
			fmt.Sprintf("%ds", f.Duration),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the flight log model.
func (m FlightLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the flight log.
func (m FlightLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the flight log.
func (m FlightLogModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "FLIGHT LOG"
	if m.stats != nil && m.stats.Flights > 0 {
		title = fmt.Sprintf("FLIGHT LOG - %d flights, %d landings, best %d",
			m.stats.Flights, m.stats.Landings, m.stats.BestScore)
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.table.View()
	if len(m.flights) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No flights recorded yet.\nFly a mission to fill the log!")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return titleStyle.Render(title) + "\n\n" +
		tableStyle.Render(content) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// RunFlightLog runs the flight log screen.
func RunFlightLog(store *storage.Store, width, height int) error {
	model := NewFlightLogModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
