package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dgaranin/vaxkeeper/internal/buildinfo"
	"github.com/dgaranin/vaxkeeper/internal/cli"
	"github.com/dgaranin/vaxkeeper/internal/config"
	"github.com/dgaranin/vaxkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
