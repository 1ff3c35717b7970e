package views

import "github.com/genricoloni/foxbridge/internal/domain"

// Snapshot is the combined entity-state document pushed to downstream
// consumers. Absent fields marshal as null rather than zero values.
type Snapshot struct {
	State         domain.PlaybackState `json:"state"`
	SongTitle     *string              `json:"song_title"`
	Artist        *string              `json:"artist"`
	IsPlaying     *bool                `json:"is_playing"`
	DurationSec   *float64             `json:"duration_s"`
	PositionSec   *float64             `json:"position_s"`
	ProgressPct   *float64             `json:"progress_pct"`
	VolumeLevel   *float64             `json:"volume_level"`
	Volume        *int                 `json:"volume"`
	PlayMode      *string              `json:"play_mode"`
	PlayModeLabel *string              `json:"play_mode_label"`
	Repeat        RepeatMode           `json:"repeat"`
	Shuffle       bool                 `json:"shuffle"`
	Lyric         *string              `json:"lyric"`
	IsLoggedIn    *bool                `json:"is_logged_in"`
	DurationClock *string              `json:"duration_clock,omitempty"`
	PositionClock *string              `json:"position_clock,omitempty"`
}

// Derive builds a snapshot from the current status. It re-derives everything
// from scratch on every call; views carry no state of their own.
func Derive(s *domain.Status) Snapshot {
	snap := Snapshot{
		State:       State(s),
		SongTitle:   Title(s),
		Artist:      Artist(s),
		IsPlaying:   Playing(s),
		DurationSec: DurationSeconds(s),
		PositionSec: PositionSeconds(s),
		ProgressPct: Progress(s),
		VolumeLevel: VolumeLevel(s),
		Volume:      VolumeOf(s),
		Repeat:      Repeat(s),
		Shuffle:     Shuffle(s),
		Lyric:       FirstLyricLine(s),
		IsLoggedIn:  LoggedIn(s),
	}

	if mode, ok := PlayModeOf(s); ok {
		symbol := string(mode)
		label := mode.Label()
		snap.PlayMode = &symbol
		snap.PlayModeLabel = &label
	}
	if snap.DurationSec != nil {
		clock := Clock(*snap.DurationSec)
		snap.DurationClock = &clock
	}
	if snap.PositionSec != nil {
		clock := Clock(*snap.PositionSec)
		snap.PositionClock = &clock
	}
	return snap
}
