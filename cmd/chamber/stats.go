package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chamber/internal/format"
	"chamber/internal/history"
	"chamber/internal/logger"
	"chamber/internal/save"
)

func newStatsCmd() *cobra.Command {
	var recent int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the saved player state and recent round history",
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := save.NewFileStore(cfg.SaveFile, cfg.CloudFile, logger.L())
			res := store.Load()
			switch res.Status {
			case save.LoadApplied:
				printStats(*res.State)
			case save.LoadNotFound:
				fmt.Println("No save file found.")
			default:
				return fmt.Errorf("save not readable: %v", res.Err)
			}

			if recent <= 0 {
				return nil
			}
			hist, err := history.Open(cfg.HistoryDir)
			if err != nil {
				fmt.Println("Round history unavailable.")
				return nil
			}
			defer hist.Close()

			records, err := hist.Recent(recent)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No rounds recorded yet.")
				return nil
			}
			fmt.Printf("\nLast %d rounds (newest first):\n", len(records))
			for _, r := range records {
				fmt.Printf("#%d %-20s %-12s bet $%-8s delta %-8s balance $%s\n",
					r.Seq, r.Mode, r.Result,
					format.Amount(r.Bet), format.Amount(r.Delta), format.Amount(r.Balance))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent rounds to show (0 to skip)")
	return cmd
}
