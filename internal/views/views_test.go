package views

import (
	"testing"

	"github.com/genricoloni/foxbridge/internal/domain"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func i64Ptr(i int64) *int64   { return &i }

func TestPlayModeCodeTable(t *testing.T) {
	want := map[int]struct {
		mode  domain.PlayMode
		label string
	}{
		1: {domain.ModeListLoop, "List Loop"},
		2: {domain.ModeOrdered, "Ordered"},
		3: {domain.ModeSingleLoop, "Single Loop"},
		4: {domain.ModeListRandom, "List Random"},
		5: {domain.ModeInfRandom, "Infinite Random"},
		6: {domain.ModeIntelligent, "Intelligent"},
	}

	for code, expected := range want {
		mode, ok := PlayModeOf(&domain.Status{PlayMode: &code})
		if !ok {
			t.Fatalf("code %d should resolve", code)
		}
		if mode != expected.mode {
			t.Errorf("code %d: expected %s, got %s", code, expected.mode, mode)
		}
		if mode.Label() != expected.label {
			t.Errorf("code %d: expected label %q, got %q", code, expected.label, mode.Label())
		}
	}

	for _, code := range []int{0, 7, -1, 255} {
		if _, ok := PlayModeOf(&domain.Status{PlayMode: &code}); ok {
			t.Errorf("code %d must resolve to absent", code)
		}
	}
	if _, ok := PlayModeOf(&domain.Status{}); ok {
		t.Error("absent code must resolve to absent")
	}
	if _, ok := PlayModeOf(nil); ok {
		t.Error("nil status must resolve to absent")
	}
}

func TestStateDerivation(t *testing.T) {
	tests := []struct {
		name     string
		status   *domain.Status
		expected domain.PlaybackState
	}{
		{"Disconnected", nil, domain.StateOff},
		{"Empty Status", &domain.Status{}, domain.StateIdle},
		{"Empty Title", &domain.Status{SongTitle: strPtr("")}, domain.StateIdle},
		{"Title Without IsPlaying", &domain.Status{SongTitle: strPtr("A")}, domain.StatePaused},
		{"Title Playing", &domain.Status{SongTitle: strPtr("A"), IsPlaying: boolPtr(true)}, domain.StatePlaying},
		{"Title Not Playing", &domain.Status{SongTitle: strPtr("A"), IsPlaying: boolPtr(false)}, domain.StatePaused},
		{"Playing Without Title", &domain.Status{IsPlaying: boolPtr(true)}, domain.StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := State(tt.status); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		status   *domain.Status
		expected *float64
	}{
		{
			name: "Quarter Played",
			status: &domain.Status{
				PlaybackPlayed: i64Ptr(30_000_000_000),
				SongDuration:   i64Ptr(120_000_000_000),
			},
			expected: float64Ptr(25.0),
		},
		{
			name: "Rounded To Two Decimals",
			status: &domain.Status{
				PlaybackPlayed: i64Ptr(1_000_000_000),
				SongDuration:   i64Ptr(3_000_000_000),
			},
			expected: float64Ptr(33.33),
		},
		{
			name: "Zero Duration",
			status: &domain.Status{
				PlaybackPlayed: i64Ptr(30_000_000_000),
				SongDuration:   i64Ptr(0),
			},
			expected: nil,
		},
		{
			name:     "Played Absent",
			status:   &domain.Status{SongDuration: i64Ptr(120_000_000_000)},
			expected: nil,
		},
		{
			name:     "Duration Absent",
			status:   &domain.Status{PlaybackPlayed: i64Ptr(30_000_000_000)},
			expected: nil,
		},
		{name: "Disconnected", status: nil, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.status)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected absent, got %v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %v, got absent", *tt.expected)
			}
			if *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *got)
			}
		})
	}
}

func float64Ptr(f float64) *float64 { return &f }

func TestUnitConversion(t *testing.T) {
	s := &domain.Status{
		SongDuration:   i64Ptr(272_500_000_000),
		PlaybackPlayed: i64Ptr(61_000_000_000),
	}

	if d := DurationSeconds(s); d == nil || *d != 272.5 {
		t.Errorf("expected 272.5s duration, got %v", d)
	}
	if p := PositionSeconds(s); p == nil || *p != 61.0 {
		t.Errorf("expected 61s position, got %v", p)
	}

	// Absent numerics propagate as absent, never 0.
	if d := DurationSeconds(&domain.Status{}); d != nil {
		t.Errorf("expected absent duration, got %v", *d)
	}
	if p := PositionSeconds(nil); p != nil {
		t.Errorf("expected absent position, got %v", *p)
	}
}

func TestVolumeConversionMirror(t *testing.T) {
	// Read direction: integer percent to fraction.
	level := VolumeLevel(&domain.Status{Volume: intPtr(80)})
	if level == nil || *level != 0.8 {
		t.Fatalf("expected 0.8, got %v", level)
	}

	// Write direction: fraction scaled by 100 and truncated, not rounded.
	writes := []struct {
		level    float64
		expected int
	}{
		{0, 0},
		{0.25, 25},
		{0.557, 55},
		{0.8, 80},
		{1.0, 100},
	}
	for _, tt := range writes {
		if got := VolumePercent(tt.level); got != tt.expected {
			t.Errorf("VolumePercent(%v): expected %d, got %d", tt.level, tt.expected, got)
		}
	}

	if VolumeLevel(&domain.Status{}) != nil {
		t.Error("absent volume must stay absent")
	}
}

func TestFirstLyricLine(t *testing.T) {
	tests := []struct {
		name     string
		lyric    *string
		expected *string
	}{
		{"Multi Line", strPtr("line1\nline2"), strPtr("line1")},
		{"Single Line", strPtr("only"), strPtr("only")},
		{"Empty", strPtr(""), nil},
		{"Absent", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstLyricLine(&domain.Status{Lyric: tt.lyric})
			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected absent, got %q", *got)
				}
				return
			}
			if got == nil || *got != *tt.expected {
				t.Errorf("expected %q, got %v", *tt.expected, got)
			}
		})
	}
}

func TestRepeatAndShuffle(t *testing.T) {
	tests := []struct {
		code    int
		repeat  RepeatMode
		shuffle bool
	}{
		{1, RepeatAll, false},  // list_loop
		{2, RepeatOff, false},  // ordered
		{3, RepeatOne, false},  // single_loop
		{4, RepeatOff, true},   // list_random
		{5, RepeatAll, true},   // inf_random
		{6, RepeatOff, false},  // intelligent
		{99, RepeatOff, false}, // unknown
	}

	for _, tt := range tests {
		s := &domain.Status{PlayMode: &tt.code}
		if got := Repeat(s); got != tt.repeat {
			t.Errorf("code %d: expected repeat %s, got %s", tt.code, tt.repeat, got)
		}
		if got := Shuffle(s); got != tt.shuffle {
			t.Errorf("code %d: expected shuffle %v, got %v", tt.code, tt.shuffle, got)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00"},
		{61, "01:01"},
		{272.5, "04:32"},
		{3599, "59:59"},
	}
	for _, tt := range tests {
		if got := Clock(tt.seconds); got != tt.expected {
			t.Errorf("Clock(%v): expected %s, got %s", tt.seconds, tt.expected, got)
		}
	}
}

func TestDisconnectedYieldsAllAbsent(t *testing.T) {
	for _, v := range Registry() {
		if got := v.Value(nil); got != nil {
			t.Errorf("view %s: expected absent for disconnected status, got %q", v.Name, *got)
		}
	}
	snap := Derive(nil)
	if snap.State != domain.StateOff {
		t.Errorf("expected off state, got %s", snap.State)
	}
	if snap.SongTitle != nil || snap.Artist != nil || snap.DurationSec != nil ||
		snap.PositionSec != nil || snap.ProgressPct != nil || snap.VolumeLevel != nil ||
		snap.PlayMode != nil || snap.Lyric != nil || snap.IsLoggedIn != nil || snap.IsPlaying != nil {
		t.Errorf("expected every derived field absent, got %+v", snap)
	}
}

func TestDeriveSnapshot(t *testing.T) {
	code := 5
	s := &domain.Status{
		SongTitle:      strPtr("A"),
		Artist:         strPtr("B"),
		IsPlaying:      boolPtr(true),
		PlayMode:       &code,
		SongDuration:   i64Ptr(120_000_000_000),
		PlaybackPlayed: i64Ptr(30_000_000_000),
		Volume:         intPtr(80),
		Lyric:          strPtr("line1\nline2"),
		IsLoggedIn:     boolPtr(true),
	}

	snap := Derive(s)
	if snap.State != domain.StatePlaying {
		t.Errorf("expected playing, got %s", snap.State)
	}
	if snap.VolumeLevel == nil || *snap.VolumeLevel != 0.8 {
		t.Errorf("expected volume level 0.8, got %v", snap.VolumeLevel)
	}
	if snap.ProgressPct == nil || *snap.ProgressPct != 25.0 {
		t.Errorf("expected progress 25.0, got %v", snap.ProgressPct)
	}
	if snap.PlayMode == nil || *snap.PlayMode != "inf_random" {
		t.Errorf("expected inf_random, got %v", snap.PlayMode)
	}
	if snap.PlayModeLabel == nil || *snap.PlayModeLabel != "Infinite Random" {
		t.Errorf("expected label, got %v", snap.PlayModeLabel)
	}
	if snap.Repeat != RepeatAll || !snap.Shuffle {
		t.Errorf("expected repeat all + shuffle for inf_random, got %s/%v", snap.Repeat, snap.Shuffle)
	}
	if snap.Lyric == nil || *snap.Lyric != "line1" {
		t.Errorf("expected first lyric line, got %v", snap.Lyric)
	}
	if snap.DurationClock == nil || *snap.DurationClock != "02:00" {
		t.Errorf("expected 02:00, got %v", snap.DurationClock)
	}
	if snap.PositionClock == nil || *snap.PositionClock != "00:30" {
		t.Errorf("expected 00:30, got %v", snap.PositionClock)
	}
}

func TestViewIcons(t *testing.T) {
	byName := map[string]View{}
	for _, v := range Registry() {
		byName[v.Name] = v
	}

	code := 4
	if got := byName["play_mode"].Icon(&domain.Status{PlayMode: &code}); got != "mdi:shuffle" {
		t.Errorf("expected shuffle icon for list_random, got %s", got)
	}
	if got := byName["play_mode"].Icon(nil); got != "mdi:playlist-music" {
		t.Errorf("expected fallback icon, got %s", got)
	}
	if got := byName["is_playing"].Icon(&domain.Status{IsPlaying: boolPtr(true)}); got != "mdi:play-circle" {
		t.Errorf("expected play icon, got %s", got)
	}
	if got := byName["is_playing"].Icon(nil); got != "mdi:pause-box" {
		t.Errorf("expected pause icon, got %s", got)
	}
}
