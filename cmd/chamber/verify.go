package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chamber/internal/save"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a save file's integrity without loading it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := cfg.SaveFile
			if len(args) == 1 {
				path = args[0]
			}

			blob, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			state, err := save.Decode(string(blob))
			switch {
			case errors.Is(err, save.ErrInvalidData):
				fmt.Printf("%s: REJECTED: checksum valid but fields out of bounds\n", path)
				return err
			case err != nil:
				fmt.Printf("%s: REJECTED: corrupt or tampered\n", path)
				return err
			}

			fmt.Printf("%s: OK: balance $%d, level %d, %d games played\n",
				path, state.Balance, state.Level, state.GamesPlayed)
			return nil
		},
	}
}
