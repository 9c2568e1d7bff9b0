package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"chamber/internal/events"
)

// watch subscribes to the session's NATS subjects and prints rounds and
// snapshots as they arrive. Read-only companion view.
func newWatchCmd() *cobra.Command {
	var natsURL string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow round and snapshot events from a running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			url := natsURL
			if url == "" {
				url = cfg.NATS.URL
			}
			if url == "" {
				url = nats.DefaultURL
			}

			nc, err := nats.Connect(url)
			if err != nil {
				return fmt.Errorf("NATS connect: %w", err)
			}
			defer nc.Close()

			subject := cfg.NATS.SubjectPrefix + ".>"
			_, err = nc.Subscribe(subject, func(msg *nats.Msg) {
				var ev events.Event
				if err := json.Unmarshal(msg.Data, &ev); err != nil {
					slog.Error("bad event payload", "err", err)
					return
				}
				pretty, _ := json.Marshal(ev.Data)
				fmt.Printf("[%s] %s\n", ev.Type, pretty)
			})
			if err != nil {
				return err
			}

			slog.Info("watching", "subject", subject, "url", url)
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			<-c
			return nil
		},
	}
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (defaults to config)")
	return cmd
}
