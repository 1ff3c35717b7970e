package domain

// PlaybackState represents the derived state of the remote player
type PlaybackState string

const (
	// StateOff indicates the player is unreachable (no status at all)
	StateOff PlaybackState = "off"
	// StateIdle indicates the player is running but no song is loaded
	StateIdle PlaybackState = "idle"
	// StatePlaying indicates a song is currently playing
	StatePlaying PlaybackState = "playing"
	// StatePaused indicates a song is loaded but not playing
	StatePaused PlaybackState = "paused"
)

// PlayMode is the symbolic playback policy of go-musicfox
type PlayMode string

const (
	ModeListLoop    PlayMode = "list_loop"
	ModeOrdered     PlayMode = "ordered"
	ModeSingleLoop  PlayMode = "single_loop"
	ModeListRandom  PlayMode = "list_random"
	ModeInfRandom   PlayMode = "inf_random"
	ModeIntelligent PlayMode = "intelligent"
)

// playModeCodes is the fixed bijection between wire codes and modes.
// Codes outside 1..6 have no mapping and resolve to absent.
var playModeCodes = map[int]PlayMode{
	1: ModeListLoop,
	2: ModeOrdered,
	3: ModeSingleLoop,
	4: ModeListRandom,
	5: ModeInfRandom,
	6: ModeIntelligent,
}

var playModeLabels = map[PlayMode]string{
	ModeListLoop:    "List Loop",
	ModeOrdered:     "Ordered",
	ModeSingleLoop:  "Single Loop",
	ModeListRandom:  "List Random",
	ModeInfRandom:   "Infinite Random",
	ModeIntelligent: "Intelligent",
}

var playModeIcons = map[PlayMode]string{
	ModeListLoop:    "mdi:repeat",
	ModeOrdered:     "mdi:view-sequential",
	ModeSingleLoop:  "mdi:repeat-once",
	ModeListRandom:  "mdi:shuffle",
	ModeInfRandom:   "mdi:shuffle-variant",
	ModeIntelligent: "mdi:heart",
}

// PlayModeFromCode resolves a wire code to its symbolic mode.
// The second return is false for codes outside the fixed table.
func PlayModeFromCode(code int) (PlayMode, bool) {
	m, ok := playModeCodes[code]
	return m, ok
}

// PlayModes returns the selectable modes in wire-code order
func PlayModes() []PlayMode {
	return []PlayMode{
		ModeListLoop, ModeOrdered, ModeSingleLoop,
		ModeListRandom, ModeInfRandom, ModeIntelligent,
	}
}

// Label returns the display label for the mode, or "" if unknown
func (m PlayMode) Label() string {
	return playModeLabels[m]
}

// Icon returns the mdi-style icon for the mode, or a generic fallback
func (m PlayMode) Icon() string {
	if icon, ok := playModeIcons[m]; ok {
		return icon
	}
	return "mdi:playlist-music"
}

// Valid reports whether the mode is one of the six known modes
func (m PlayMode) Valid() bool {
	_, ok := playModeLabels[m]
	return ok
}

// Status mirrors one frame of the go-musicfox status payload.
//
// Optional fields are pointers so that "field absent in the payload" stays
// distinguishable from a zero value; derivations must never coerce an absent
// numeric to 0. A nil *Status means disconnected, which is a different thing
// from a decoded-but-empty frame (player up, no song loaded).
type Status struct {
	// SongTitle is the title of the loaded song, if any
	SongTitle *string `json:"song_title"`
	// Artist name
	Artist *string `json:"artist"`
	// IsPlaying reports whether playback is running
	IsPlaying *bool `json:"is_playing"`
	// PlayMode is the wire code of the active play mode (1..6)
	PlayMode *int `json:"play_mode"`
	// SongDuration is the total song length in nanoseconds
	SongDuration *int64 `json:"song_duration"`
	// PlaybackPlayed is the elapsed playback time in nanoseconds
	PlaybackPlayed *int64 `json:"playback_played"`
	// Volume is the player volume, 0..100
	Volume *int `json:"volume"`
	// Lyric holds the current lyric block, lines joined with '\n'
	Lyric *string `json:"lyric"`
	// IsLoggedIn reports whether the player has a logged-in account
	IsLoggedIn *bool `json:"is_logged_in"`
}
