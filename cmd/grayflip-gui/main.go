package main

import (
	"context"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/grayflip/internal/app"
	"github.com/aliskhannn/grayflip/internal/config"
	"github.com/aliskhannn/grayflip/internal/ui"
)

func main() {
	// Initialize logger and load application configuration.
	zlog.Init()
	cfg := config.MustLoad(os.Getenv("GRAYFLIP_CONFIG"))
	app.SetupLogging(cfg)

	svc, err := app.NewService(cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to build conversion service")
	}

	a := fyneapp.NewWithID("com.github.aliskhannn.grayflip")
	ui.NewWindow(context.Background(), a, svc).ShowAndRun()
}
