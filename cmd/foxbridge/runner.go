package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/foxbridge/internal/app"
	"github.com/genricoloni/foxbridge/internal/client"
	"github.com/genricoloni/foxbridge/internal/config"
	"github.com/genricoloni/foxbridge/internal/state"
	"github.com/genricoloni/foxbridge/internal/stream"
	"github.com/genricoloni/foxbridge/internal/ui"
	"github.com/genricoloni/foxbridge/internal/views"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Runner holds the CLI actions
type Runner struct{}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "run",
			Usage:  "Run the bridge daemon",
			Action: r.Run,
		},
		{
			Name:   "status",
			Usage:  "Fetch the player status once and print it",
			Action: r.Status,
		},
		{
			Name:      "send",
			Usage:     "Send one raw command to the player",
			ArgsUsage: "<command> [args...]",
			Action:    r.Send,
		},
		{
			Name:   "watch",
			Usage:  "Follow the player status in a terminal dashboard",
			Action: r.Watch,
		},
		{
			Name:   "init",
			Usage:  "Write an example configuration file",
			Action: r.Init,
		},
	}
}

func (r *Runner) loadConfig(cmd *cli.Command) (*config.Config, error) {
	return config.Load(cmd.String("config"))
}

// Run starts the daemon and blocks until interrupted
func (r *Runner) Run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	fxApp := app.New(cfg)

	runCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fxApp.Start(runCtx); err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	<-runCtx.Done()

	if err := fxApp.Stop(context.Background()); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Status fetches the status once and prints the derived snapshot
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	c := client.New(zap.NewNop(), cfg.Player.BaseURL(), cfg.Player.ConnectTimeout())
	status, err := c.StatusNow(ctx)
	if err != nil {
		return err
	}

	snap := views.Derive(status)
	fmt.Printf("state:   %s\n", snap.State)
	if snap.SongTitle != nil {
		fmt.Printf("title:   %s\n", *snap.SongTitle)
	}
	if snap.Artist != nil {
		fmt.Printf("artist:  %s\n", *snap.Artist)
	}
	if snap.PositionClock != nil && snap.DurationClock != nil {
		fmt.Printf("time:    %s / %s", *snap.PositionClock, *snap.DurationClock)
		if snap.ProgressPct != nil {
			fmt.Printf("  (%.2f%%)", *snap.ProgressPct)
		}
		fmt.Println()
	}
	if snap.PlayModeLabel != nil {
		fmt.Printf("mode:    %s\n", *snap.PlayModeLabel)
	}
	if snap.Volume != nil {
		fmt.Printf("volume:  %d%%\n", *snap.Volume)
	}
	if snap.Lyric != nil {
		fmt.Printf("lyric:   %s\n", *snap.Lyric)
	}
	return nil
}

// Send forwards one raw command to the player
func (r *Runner) Send(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("missing command name")
	}

	c := client.New(zap.NewNop(), cfg.Player.BaseURL(), cfg.Player.ConnectTimeout())
	return c.SendCommand(ctx, args[0], args[1:]...)
}

// Watch runs the terminal dashboard against a live stream
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	cell := state.NewCell()
	model := ui.NewModel(cell)

	ingestor := stream.NewIngestor(
		zap.NewNop(),
		cell,
		cfg.Player.EventsURL(),
		cfg.Player.ConnectTimeout(),
		cfg.Player.ReconnectDelay(),
	)
	if err := ingestor.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = ingestor.Stop(context.Background()) }()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

// Init writes the example configuration next to the user
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := config.WriteExample(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
