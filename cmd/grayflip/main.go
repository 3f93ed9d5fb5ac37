package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/grayflip/internal/app"
	"github.com/aliskhannn/grayflip/internal/cli"
	"github.com/aliskhannn/grayflip/internal/config"
)

func main() {
	// Context & signals: an interrupt stops an animation between frames.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize logger; the level is applied once the config is loaded.
	zlog.Init()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	cmd := cli.New(func(cfg *config.Config) (cli.Converter, error) {
		app.SetupLogging(cfg)
		return app.NewService(cfg)
	})

	if err := cmd.Run(ctx, os.Args); err != nil {
		zlog.Logger.Debug().Err(err).Msg("grayflip failed")
		stop()
		os.Exit(1)
	}
}
