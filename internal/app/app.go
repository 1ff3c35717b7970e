// Package app is the composition root: it wires the cell, client, ingestor
// and bridge into an fx application with lifecycle hooks.
package app

import (
	"context"
	"fmt"

	"github.com/genricoloni/foxbridge/internal/bridge"
	"github.com/genricoloni/foxbridge/internal/client"
	"github.com/genricoloni/foxbridge/internal/config"
	"github.com/genricoloni/foxbridge/internal/domain"
	"github.com/genricoloni/foxbridge/internal/state"
	"github.com/genricoloni/foxbridge/internal/stream"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options builds the fx option set for a loaded configuration
func Options(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		fx.Provide(
			NewLogger,
			state.NewCell,
			newClient,
			asController,
			newIngestor,
			newBridge,
		),

		fx.Invoke(registerHooks),
	)
}

// New assembles a runnable fx application
func New(cfg *config.Config) *fx.App {
	return fx.New(Options(cfg))
}

// NewLogger creates a zap logger at the configured level
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newClient(cfg *config.Config, logger *zap.Logger) *client.Client {
	return client.New(logger, cfg.Player.BaseURL(), cfg.Player.ConnectTimeout())
}

func asController(c *client.Client) domain.Controller {
	return c
}

func newIngestor(cfg *config.Config, logger *zap.Logger, cell *state.Cell) *stream.Ingestor {
	return stream.NewIngestor(
		logger,
		cell,
		cfg.Player.EventsURL(),
		cfg.Player.ConnectTimeout(),
		cfg.Player.ReconnectDelay(),
	)
}

// newBridge returns nil when the bridge is disabled by configuration
func newBridge(cfg *config.Config, logger *zap.Logger, cell *state.Cell, controller domain.Controller) *bridge.Server {
	if cfg.Bridge.Listen == "" {
		logger.Info("Bridge disabled by configuration")
		return nil
	}
	return bridge.NewServer(logger, cell, controller, cfg.Bridge.Listen)
}

func registerHooks(lc fx.Lifecycle, logger *zap.Logger, ingestor *stream.Ingestor, bridgeSrv *bridge.Server) {
	lc.Append(fx.Hook{
		OnStart: ingestor.Start,
		OnStop:  ingestor.Stop,
	})

	if bridgeSrv != nil {
		lc.Append(fx.Hook{
			OnStart: bridgeSrv.Start,
			OnStop:  bridgeSrv.Stop,
		})
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("foxbridge started")
			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info("foxbridge shutting down")
			return nil
		},
	})
}
