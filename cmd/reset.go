package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayoung/topikpal/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset study data",
	Long:  "Reset checklist progress and/or the personal word bank. With no flags, both are cleared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		progressOnly, _ := cmd.Flags().GetBool("progress")
		wordsOnly, _ := cmd.Flags().GetBool("words")
		all := !progressOnly && !wordsOnly

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if all || progressOnly {
			if err := s.ClearProgress(); err != nil {
				return fmt.Errorf("clear progress: %w", err)
			}
			fmt.Println("Checklist progress cleared.")
		}
		if all || wordsOnly {
			if err := s.ClearWordBank(); err != nil {
				return fmt.Errorf("clear word bank: %w", err)
			}
			fmt.Println("Word bank cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("progress", false, "Only clear checklist progress")
	resetCmd.Flags().Bool("words", false, "Only clear the word bank")
}
