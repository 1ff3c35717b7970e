// Package views derives presentation values from the shared status. Every
// function here is pure: no I/O, no state, nil status means disconnected.
package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/genricoloni/foxbridge/internal/domain"
)

const _nsPerSecond = 1_000_000_000

// RepeatMode is the derived repeat policy for media-player style consumers
type RepeatMode string

const (
	RepeatOff RepeatMode = "off"
	RepeatOne RepeatMode = "one"
	RepeatAll RepeatMode = "all"
)

// State derives the 3-state playback state: off when disconnected, idle when
// no song is loaded, otherwise playing/paused keyed on is_playing. An absent
// is_playing with a loaded song reads as paused.
func State(s *domain.Status) domain.PlaybackState {
	if s == nil {
		return domain.StateOff
	}
	if s.SongTitle == nil || *s.SongTitle == "" {
		return domain.StateIdle
	}
	if s.IsPlaying != nil && *s.IsPlaying {
		return domain.StatePlaying
	}
	return domain.StatePaused
}

// Title returns the song title, or nil when absent
func Title(s *domain.Status) *string {
	if s == nil {
		return nil
	}
	return s.SongTitle
}

// Artist returns the artist, or nil when absent
func Artist(s *domain.Status) *string {
	if s == nil {
		return nil
	}
	return s.Artist
}

// DurationSeconds converts the song duration from nanoseconds to seconds,
// rounded to 2 decimals. Absent stays absent.
func DurationSeconds(s *domain.Status) *float64 {
	if s == nil || s.SongDuration == nil {
		return nil
	}
	return round2(float64(*s.SongDuration) / _nsPerSecond)
}

// PositionSeconds converts the elapsed playback from nanoseconds to seconds,
// rounded to 2 decimals. Absent stays absent.
func PositionSeconds(s *domain.Status) *float64 {
	if s == nil || s.PlaybackPlayed == nil {
		return nil
	}
	return round2(float64(*s.PlaybackPlayed) / _nsPerSecond)
}

// Progress computes played/duration as a percentage rounded to 2 decimals.
// It is defined only when both values are present and the duration is
// positive; otherwise absent.
func Progress(s *domain.Status) *float64 {
	if s == nil || s.PlaybackPlayed == nil || s.SongDuration == nil || *s.SongDuration <= 0 {
		return nil
	}
	return round2(float64(*s.PlaybackPlayed) / float64(*s.SongDuration) * 100)
}

// VolumeLevel converts the 0..100 player volume to a 0..1 fraction
func VolumeLevel(s *domain.Status) *float64 {
	if s == nil || s.Volume == nil {
		return nil
	}
	level := float64(*s.Volume) / 100
	return &level
}

// VolumePercent is the exact mirror of VolumeLevel for the write direction:
// the fraction scaled by 100 and truncated to an integer. Keeping both
// conversions here avoids drift between read and write paths.
func VolumePercent(level float64) int {
	return int(level * 100)
}

// VolumeOf returns the raw 0..100 volume, or nil when absent
func VolumeOf(s *domain.Status) *int {
	if s == nil {
		return nil
	}
	return s.Volume
}

// PlayModeOf maps the wire code through the fixed bijection. Unknown or
// absent codes yield ok=false.
func PlayModeOf(s *domain.Status) (domain.PlayMode, bool) {
	if s == nil || s.PlayMode == nil {
		return "", false
	}
	return domain.PlayModeFromCode(*s.PlayMode)
}

// Repeat derives the repeat policy from the play mode: one for single_loop,
// all for list_loop and inf_random, off otherwise.
func Repeat(s *domain.Status) RepeatMode {
	mode, ok := PlayModeOf(s)
	if !ok {
		return RepeatOff
	}
	switch mode {
	case domain.ModeSingleLoop:
		return RepeatOne
	case domain.ModeListLoop, domain.ModeInfRandom:
		return RepeatAll
	default:
		return RepeatOff
	}
}

// Shuffle reports whether the play mode is a random one
func Shuffle(s *domain.Status) bool {
	mode, ok := PlayModeOf(s)
	return ok && (mode == domain.ModeListRandom || mode == domain.ModeInfRandom)
}

// FirstLyricLine returns the first line of the lyric block; absent or empty
// lyric yields absent.
func FirstLyricLine(s *domain.Status) *string {
	if s == nil || s.Lyric == nil || *s.Lyric == "" {
		return nil
	}
	line, _, _ := strings.Cut(*s.Lyric, "\n")
	return &line
}

// LoggedIn returns the logged-in flag, or nil when absent
func LoggedIn(s *domain.Status) *bool {
	if s == nil {
		return nil
	}
	return s.IsLoggedIn
}

// Playing returns the raw is_playing flag, or nil when absent
func Playing(s *domain.Status) *bool {
	if s == nil {
		return nil
	}
	return s.IsPlaying
}

// Clock formats a second count as mm:ss
func Clock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
