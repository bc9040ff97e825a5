package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dayoung/topikpal/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "topikpal",
	Short: "TOPIK I study companion",
	Long:  "TOPIK PAL — terminal study companion for the TOPIK I Korean proficiency exam: flashcards, grammar reference, practice quizzes, a personal word bank, and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Local .env is the easiest place to keep API keys.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the data file (overrides TOPIKPAL_DB env var)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the data path using --db flag (highest priority),
// then TOPIKPAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
