// Package client implements the outbound control surface of a go-musicfox
// player: JSON commands POSTed to /command and one-shot status reads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/genricoloni/foxbridge/internal/domain"
	"go.uber.org/zap"
)

const _maxResponseSize = 1 * 1024 * 1024 // 1 MB

// ErrCommandRejected is returned when the player answers a command with a
// non-200 status. The response body is logged, not retried.
var ErrCommandRejected = fmt.Errorf("command rejected by player")

// Client talks to the go-musicfox HTTP API
type Client struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
}

// New creates a client for the API rooted at baseURL
// (e.g. "http://localhost:23333/api/v1")
func New(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout, // Essential to prevent blocking the daemon
		},
	}
}

type commandPayload struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// SendCommand POSTs a raw command to the player
func (c *Client) SendCommand(ctx context.Context, command string, args ...string) error {
	if args == nil {
		args = []string{}
	}
	body, err := json.Marshal(commandPayload{Command: command, Args: args})
	if err != nil {
		return fmt.Errorf("failed to encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/command", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, _maxResponseSize))
		c.logger.Error("Command failed",
			zap.String("command", command),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return fmt.Errorf("%w: %s (status %d)", ErrCommandRejected, command, resp.StatusCode)
	}

	c.logger.Debug("Command sent", zap.String("command", command), zap.Strings("args", args))
	return nil
}

// Play resumes playback
func (c *Client) Play(ctx context.Context) error {
	return c.SendCommand(ctx, "play")
}

// Pause pauses playback
func (c *Client) Pause(ctx context.Context) error {
	return c.SendCommand(ctx, "pause")
}

// Next skips to the next track
func (c *Client) Next(ctx context.Context) error {
	return c.SendCommand(ctx, "next")
}

// Previous skips to the previous track
func (c *Client) Previous(ctx context.Context) error {
	return c.SendCommand(ctx, "previous")
}

// SetPlayMode switches the player to the given play mode.
// The intelligent mode has its own activation command upstream.
func (c *Client) SetPlayMode(ctx context.Context, mode domain.PlayMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown play mode %q", mode)
	}
	if mode == domain.ModeIntelligent {
		return c.ActivateIntelligentMode(ctx)
	}
	return c.SendCommand(ctx, "set_play_mode", string(mode))
}

// NextPlayMode cycles to the next play mode
func (c *Client) NextPlayMode(ctx context.Context) error {
	return c.SendCommand(ctx, "next_play_mode")
}

// ActivateIntelligentMode enables the intelligent playback mode
func (c *Client) ActivateIntelligentMode(ctx context.Context) error {
	return c.SendCommand(ctx, "activate_intelligent_mode")
}

// StatusNow fetches the current status once. The player being unreachable
// yields a nil status and no error, matching the stream's disconnect shape.
func (c *Client) StatusNow(ctx context.Context) (*domain.Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Status fetch failed", zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Status fetch returned non-200", zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var status domain.Status
	if err := json.NewDecoder(io.LimitReader(resp.Body, _maxResponseSize)).Decode(&status); err != nil {
		c.logger.Warn("Status payload undecodable", zap.Error(err))
		return nil, nil
	}
	return &status, nil
}

var _ domain.Controller = (*Client)(nil)
