package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		summaries, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No sessions yet. Run `bondten play` to start practicing.")
			return nil
		}

		fmt.Printf("Recent sessions (latest %d)\n", len(summaries))
		fmt.Printf("%-17s  %6s  %8s  %6s  %4s  %6s\n",
			"When", "Rounds", "Accuracy", "Level", "Gems", "Time")
		fmt.Println(strings.Repeat("─", 58))
		for _, s := range summaries {
			fmt.Printf("%-17s  %6d  %7.0f%%  %6s  %4d  %6s\n",
				s.Timestamp.Format("2006-01-02 15:04"),
				s.RoundsServed,
				percent(s.CorrectRounds, s.RoundsServed),
				levelSpan(s.LevelStart, s.LevelEnd),
				s.GemCount,
				(time.Duration(s.DurationSecs) * time.Second).String())
		}

		stats, err := repo.LevelStats(ctx)
		if err != nil {
			return fmt.Errorf("query level stats: %w", err)
		}
		if len(stats) > 0 {
			nums := make([]int, 0, len(stats))
			for n := range stats {
				nums = append(nums, n)
			}
			sort.Ints(nums)

			fmt.Println("\nAccuracy by level")
			fmt.Printf("%-5s  %-16s  %8s  %8s\n", "Level", "Name", "Attempts", "Accuracy")
			fmt.Println(strings.Repeat("─", 44))
			for _, n := range nums {
				name := ""
				if lvl, ok := levels.Get(n); ok {
					name = lvl.Name
				}
				ls := stats[n]
				fmt.Printf("%-5d  %-16s  %8d  %7.0f%%\n",
					n, name, ls.Attempts, percent(ls.Correct, ls.Attempts))
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 10, "Number of recent sessions to show")
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// levelSpan renders "2" for a steady session and "2 → 3" for a climb.
func levelSpan(start, end int) string {
	if start == end {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d → %d", start, end)
}
