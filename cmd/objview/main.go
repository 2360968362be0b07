package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/objview/config"
	"github.com/Carmen-Shannon/objview/logger"
	"github.com/Carmen-Shannon/objview/viewer"
)

func main() {
	flags := config.ParseFlags()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	flags.Apply(cfg)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v, err := viewer.NewViewer(cfg, viewer.WithForceSoftwareRenderer(flags.Software()))
	if err != nil {
		logger.Sugar.Errorw("failed to create viewer", "error", err)
		os.Exit(1)
	}

	if err := v.Run(); err != nil {
		logger.Sugar.Errorw("viewer exited with error", "error", err)
		os.Exit(1)
	}
}
