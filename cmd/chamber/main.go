package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chamber/internal/config"
	"chamber/internal/events"
	"chamber/internal/history"
	"chamber/internal/logger"
	"chamber/internal/save"
	"chamber/internal/session"
)

var (
	configPath string
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:   "chamber",
		Short: "Terminal chance-game simulator",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "chamber.yaml", "path to config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newSession assembles the full pipeline: store, optional history, optional
// NATS emitter. withStores=false keeps it in-memory for read-only commands.
func newSession(cfg *config.Config, withStores bool) (*session.Session, error) {
	log := logger.L()
	settings := config.LoadSettings(cfg.SettingsFile)

	opts := session.Options{
		Settings: settings,
		Log:      log,
	}

	if withStores {
		opts.Store = save.NewFileStore(cfg.SaveFile, cfg.CloudFile, log)

		hist, err := history.Open(cfg.HistoryDir)
		if err != nil {
			log.Warn("round history unavailable", "dir", cfg.HistoryDir, "err", err)
		} else {
			opts.History = hist
		}

		if cfg.NATS.URL != "" {
			emitter, err := events.NewEmitter(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
			if err != nil {
				log.Warn("event emitter unavailable", "url", cfg.NATS.URL, "err", err)
			} else {
				opts.Emitter = emitter
			}
		}
	}

	return session.New(opts), nil
}
