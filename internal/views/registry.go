package views

import (
	"strconv"

	"github.com/genricoloni/foxbridge/internal/domain"
)

// View is one read-only presentation entity: a name, an icon, and a pure
// extraction function over the shared status. There is deliberately no
// hierarchy here; every entity is this one type configured differently.
type View struct {
	Name    string
	Unit    string
	Icon    func(*domain.Status) string
	Extract func(*domain.Status) *string
}

// Value applies the extraction to the given status
func (v View) Value(s *domain.Status) *string {
	return v.Extract(s)
}

func staticIcon(icon string) func(*domain.Status) string {
	return func(*domain.Status) string { return icon }
}

func fromFloat(f func(*domain.Status) *float64) func(*domain.Status) *string {
	return func(s *domain.Status) *string {
		v := f(s)
		if v == nil {
			return nil
		}
		text := strconv.FormatFloat(*v, 'f', -1, 64)
		return &text
	}
}

func fromBool(f func(*domain.Status) *bool) func(*domain.Status) *string {
	return func(s *domain.Status) *string {
		v := f(s)
		if v == nil {
			return nil
		}
		text := strconv.FormatBool(*v)
		return &text
	}
}

// Registry returns the canonical sensor set, one View per displayed field
func Registry() []View {
	return []View{
		{
			Name:    "title",
			Icon:    staticIcon("mdi:music-note"),
			Extract: Title,
		},
		{
			Name:    "artist",
			Icon:    staticIcon("mdi:account-music"),
			Extract: Artist,
		},
		{
			Name: "play_mode",
			Icon: func(s *domain.Status) string {
				mode, ok := PlayModeOf(s)
				if !ok {
					return "mdi:playlist-music"
				}
				return mode.Icon()
			},
			Extract: func(s *domain.Status) *string {
				mode, ok := PlayModeOf(s)
				if !ok {
					return nil
				}
				symbol := string(mode)
				return &symbol
			},
		},
		{
			Name:    "lyric",
			Icon:    staticIcon("mdi:text-long"),
			Extract: FirstLyricLine,
		},
		{
			Name:    "is_logged_in",
			Icon:    staticIcon("mdi:login"),
			Extract: fromBool(LoggedIn),
		},
		{
			Name: "is_playing",
			Icon: func(s *domain.Status) string {
				if p := Playing(s); p != nil && *p {
					return "mdi:play-circle"
				}
				return "mdi:pause-box"
			},
			Extract: fromBool(Playing),
		},
		{
			Name:    "duration",
			Unit:    "s",
			Icon:    staticIcon("mdi:timer"),
			Extract: fromFloat(DurationSeconds),
		},
		{
			Name:    "playback_played",
			Unit:    "s",
			Icon:    staticIcon("mdi:progress-clock"),
			Extract: fromFloat(PositionSeconds),
		},
		{
			Name: "volume",
			Unit: "%",
			Icon: staticIcon("mdi:volume-high"),
			Extract: func(s *domain.Status) *string {
				v := VolumeOf(s)
				if v == nil {
					return nil
				}
				text := strconv.Itoa(*v)
				return &text
			},
		},
		{
			Name:    "progress",
			Unit:    "%",
			Icon:    staticIcon("mdi:percent"),
			Extract: fromFloat(Progress),
		},
	}
}
