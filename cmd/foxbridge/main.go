package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	runner := &Runner{}

	cmd := &cli.Command{
		Name:    "foxbridge",
		Usage:   "Bridge a go-musicfox player into WebSocket and terminal consumers",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Commands: runner.register(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "foxbridge: %v\n", err)
		os.Exit(1)
	}
}
