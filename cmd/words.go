package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayoung/topikpal/internal/store"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the personal word bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		bank := s.WordBank()
		if len(bank) == 0 {
			fmt.Println("Your word bank is empty.")
			return nil
		}

		learnedOnly, _ := cmd.Flags().GetBool("learned")

		fmt.Printf("%-3s  %-16s  %-24s  %-10s\n", "", "Korean", "English", "Added")
		fmt.Println(strings.Repeat("─", 60))

		learned := 0
		for _, e := range bank {
			if e.Learned {
				learned++
			}
			if learnedOnly && !e.Learned {
				continue
			}
			mark := " "
			if e.Learned {
				mark = "✓"
			}
			added := time.UnixMilli(e.AddedAt).Local().Format("2006-01-02")
			fmt.Printf("%-3s  %-16s  %-24s  %-10s\n", mark, e.Korean, e.English, added)
		}

		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%d words, %d learned\n", len(bank), learned)
		return nil
	},
}

func init() {
	wordsCmd.Flags().Bool("learned", false, "Only show words marked learned")
}
