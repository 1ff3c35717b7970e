// Package ui renders a live terminal dashboard for the player status.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/genricoloni/foxbridge/internal/domain"
	"github.com/genricoloni/foxbridge/internal/state"
	"github.com/genricoloni/foxbridge/internal/views"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stateStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
)

// statusMsg signals that the cell holds a fresh snapshot
type statusMsg struct{}

// Model is the bubbletea model for the watch dashboard. It subscribes to the
// cell once and re-derives its snapshot on every notification.
type Model struct {
	cell        *state.Cell
	notify      <-chan struct{}
	unsubscribe func()
	snap        views.Snapshot
	width       int
}

// NewModel creates a dashboard model subscribed to the given cell
func NewModel(cell *state.Cell) Model {
	notify, unsubscribe := cell.Subscribe()
	return Model{
		cell:        cell,
		notify:      notify,
		unsubscribe: unsubscribe,
		snap:        views.Derive(cell.Get()),
		width:       80,
	}
}

func (m Model) waitForUpdate() tea.Msg {
	<-m.notify
	return statusMsg{}
}

// Init starts listening for cell notifications
func (m Model) Init() tea.Cmd {
	return m.waitForUpdate
}

// Update handles key presses and status notifications
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.unsubscribe()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case statusMsg:
		m.snap = views.Derive(m.cell.Get())
		return m, m.waitForUpdate
	}
	return m, nil
}

// View renders the dashboard
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(stateStyle.Render(stateLine(m.snap)))
	b.WriteString("\n\n")

	if m.snap.SongTitle != nil {
		b.WriteString(titleStyle.Render(*m.snap.SongTitle))
		b.WriteString("\n")
	}
	if m.snap.Artist != nil {
		b.WriteString(artistStyle.Render(*m.snap.Artist))
		b.WriteString("\n")
	}
	if m.snap.SongTitle != nil || m.snap.Artist != nil {
		b.WriteString("\n")
	}

	if m.snap.ProgressPct != nil {
		b.WriteString(progressBar(*m.snap.ProgressPct, m.barWidth()))
		b.WriteString("\n")
	}
	if m.snap.PositionClock != nil && m.snap.DurationClock != nil {
		b.WriteString(dimStyle.Render(*m.snap.PositionClock + " / " + *m.snap.DurationClock))
		b.WriteString("\n")
	}

	var details []string
	if m.snap.PlayModeLabel != nil {
		details = append(details, "mode: "+*m.snap.PlayModeLabel)
	}
	if m.snap.Volume != nil {
		details = append(details, fmt.Sprintf("vol: %d%%", *m.snap.Volume))
	}
	if len(details) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(strings.Join(details, "  ·  ")))
		b.WriteString("\n")
	}

	if m.snap.Lyric != nil {
		b.WriteString("\n")
		b.WriteString(artistStyle.Italic(true).Render(*m.snap.Lyric))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q to quit"))

	return frameStyle.Render(b.String())
}

func (m Model) barWidth() int {
	w := m.width - 8
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}

func stateLine(snap views.Snapshot) string {
	switch snap.State {
	case domain.StatePlaying:
		return "▶ playing"
	case domain.StatePaused:
		return "⏸ paused"
	case domain.StateIdle:
		return "· idle"
	default:
		return "✕ disconnected"
	}
}

func progressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}
