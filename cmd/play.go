package cmd

import (
	"fmt"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		rounds, _ := cmd.Flags().GetInt("rounds")

		if level != 0 && (level < levels.MinLevel || level > levels.MaxLevel) {
			return fmt.Errorf("level %d out of range %d-%d", level, levels.MinLevel, levels.MaxLevel)
		}
		if rounds < 0 {
			return fmt.Errorf("rounds must be positive, got %d", rounds)
		}

		return runApp(cmd, level, rounds)
	},
}

func init() {
	playCmd.Flags().Int("level", 0, "Start at a specific level instead of the saved one")
	playCmd.Flags().Int("rounds", session.DefaultRounds, "Rounds per session")
}
