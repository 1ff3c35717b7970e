package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/foxbridge/internal/domain"
	"github.com/genricoloni/foxbridge/internal/state"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func i64Ptr(i int64) *int64   { return &i }

func TestViewDisconnected(t *testing.T) {
	m := NewModel(state.NewCell())
	if !strings.Contains(m.View(), "disconnected") {
		t.Error("expected disconnected marker for an empty cell")
	}
}

func TestViewRendersStatus(t *testing.T) {
	cell := state.NewCell()
	cell.Set(&domain.Status{
		SongTitle:      strPtr("Stairway to Heaven"),
		Artist:         strPtr("Led Zeppelin"),
		IsPlaying:      boolPtr(true),
		SongDuration:   i64Ptr(120_000_000_000),
		PlaybackPlayed: i64Ptr(30_000_000_000),
	})

	m := NewModel(cell)
	// The cell was set before subscribing; pick up the snapshot directly.
	updated, _ := m.Update(statusMsg{})
	view := updated.View()

	for _, want := range []string{"playing", "Stairway to Heaven", "Led Zeppelin", "00:30 / 02:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestUpdateOnNotification(t *testing.T) {
	cell := state.NewCell()
	m := NewModel(cell)

	cell.Set(&domain.Status{SongTitle: strPtr("A")})

	// The pending notification resolves the wait command immediately.
	msg := m.waitForUpdate()
	if _, ok := msg.(statusMsg); !ok {
		t.Fatalf("expected statusMsg, got %T", msg)
	}
	updated, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("model must keep waiting for the next update")
	}
	if !strings.Contains(updated.View(), "paused") {
		t.Error("title without is_playing must render as paused")
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(state.NewCell())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}
