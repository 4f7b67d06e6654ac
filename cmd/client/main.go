package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/truthlens/truthlens/internal/buildinfo"
	"github.com/truthlens/truthlens/internal/client/app"
	"github.com/truthlens/truthlens/internal/client/config"
	"github.com/truthlens/truthlens/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	a, err := app.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)

}
