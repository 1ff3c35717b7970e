// Package stream maintains a best-effort live mirror of the remote player
// status by consuming its SSE event stream.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/foxbridge/internal/domain"
	"github.com/genricoloni/foxbridge/internal/state"
	"go.uber.org/zap"
)

const _dataPrefix = "data:"

// Lyric blocks can push frames well past bufio's default line limit.
const _maxLineSize = 1 * 1024 * 1024

// Ingestor owns the writer side of a state cell. It connects to the player's
// /events endpoint, decodes one status object per data frame, and swaps it
// into the cell. Any disconnect clears the cell (so subscribers observe the
// off transition immediately) and triggers a reconnect after a fixed delay,
// forever. There is no maximum retry count: the player is a local companion
// process that may be restarted at any time.
type Ingestor struct {
	logger     *zap.Logger
	cell       *state.Cell
	client     *http.Client
	eventsURL  string
	retryDelay time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewIngestor creates an ingestor for the stream at eventsURL.
// connectTimeout bounds dialing and response headers; reads are unbounded,
// the stream is expected to stay open indefinitely.
func NewIngestor(logger *zap.Logger, cell *state.Cell, eventsURL string, connectTimeout, retryDelay time.Duration) *Ingestor {
	return &Ingestor{
		logger:     logger,
		cell:       cell,
		eventsURL:  eventsURL,
		retryDelay: retryDelay,
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: connectTimeout,
			},
		},
	}
}

// Start launches the ingestion loop in a goroutine and returns immediately.
// The loop stops when ctx is cancelled or Stop is called.
func (i *Ingestor) Start(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.running {
		return nil
	}
	i.running = true

	// The start context only covers startup; the loop lives until Stop.
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	i.cancel = cancel

	i.wg.Add(1)
	go i.run(loopCtx)

	i.logger.Info("Status ingestor started", zap.String("url", i.eventsURL))
	return nil
}

// Stop cancels the ingestion loop and waits for it to exit. Cancellation is
// carried on the stream request, so a read blocked on the connection fails
// fast instead of lingering.
func (i *Ingestor) Stop(ctx context.Context) error {
	i.mu.Lock()
	if !i.running {
		i.mu.Unlock()
		return nil
	}
	i.running = false
	if i.cancel != nil {
		i.cancel()
	}
	i.mu.Unlock()

	done := make(chan struct{})
	go func() {
		i.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		i.logger.Info("Status ingestor stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ingestor shutdown interrupted: %w", ctx.Err())
	}
}

// run is the reconnect loop: consume one connection, clear the cell, wait
// the fixed delay, retry. It exits only on context cancellation.
func (i *Ingestor) run(ctx context.Context) {
	defer i.wg.Done()

	for {
		err := i.consume(ctx)

		// Clearing and notifying happen before any delay, so views flip
		// to off as soon as the connection is gone.
		i.cell.Clear()

		if ctx.Err() != nil {
			i.logger.Info("Ingestion loop stopped")
			return
		}

		i.logger.Warn("Stream disconnected, reconnecting",
			zap.Error(err),
			zap.Duration("delay", i.retryDelay))

		select {
		case <-ctx.Done():
			i.logger.Info("Ingestion loop stopped during retry delay")
			return
		case <-time.After(i.retryDelay):
		}
	}
}

// consume opens one stream connection and processes frames until it fails.
// A malformed payload is logged and dropped; the connection stays open.
func (i *Ingestor) consume(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.eventsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	i.logger.Info("Connecting to status stream", zap.String("url", i.eventsURL))

	resp, err := i.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	i.logger.Info("Status stream connected")

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), _maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, _dataPrefix) {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, _dataPrefix))

		var status domain.Status
		if err := json.Unmarshal([]byte(payload), &status); err != nil {
			i.logger.Warn("Dropping malformed status frame", zap.Error(err))
			continue
		}

		i.cell.Set(&status)
		i.logger.Debug("Status frame applied")
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream read failed: %w", err)
	}
	return fmt.Errorf("stream ended")
}

var _ domain.Source = (*Ingestor)(nil)
