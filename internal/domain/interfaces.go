package domain

import "context"

// Controller defines the outbound control surface of a go-musicfox player.
// Implementations translate calls into HTTP commands against the player.
//
//go:generate mockgen -destination=mocks/controller_mock.go -package=mocks github.com/genricoloni/foxbridge/internal/domain Controller
type Controller interface {
	// Play resumes playback
	Play(ctx context.Context) error

	// Pause pauses playback
	Pause(ctx context.Context) error

	// Next skips to the next track
	Next(ctx context.Context) error

	// Previous skips to the previous track
	Previous(ctx context.Context) error

	// SetPlayMode switches the player to the given play mode
	SetPlayMode(ctx context.Context, mode PlayMode) error

	// NextPlayMode cycles to the next play mode
	NextPlayMode(ctx context.Context) error

	// ActivateIntelligentMode enables the intelligent playback mode
	ActivateIntelligentMode(ctx context.Context) error

	// StatusNow fetches the current status once. A network failure yields
	// a nil status and no error; the player being unreachable is not an
	// error condition for callers.
	StatusNow(ctx context.Context) (*Status, error)
}

// Source defines the lifecycle of a status ingestor.
// Implementations own the single writer side of a state cell.
type Source interface {
	// Start begins ingesting status updates. It returns once the
	// background loop is running; the loop stops when ctx is cancelled.
	Start(ctx context.Context) error

	// Stop cancels the ingestion loop and waits for it to exit
	Stop(ctx context.Context) error
}
