package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if !force {
			fmt.Printf("This deletes all progress stored at %s.\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		// WAL mode leaves sidecar files next to the database.
		removed := false
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			err := os.Remove(p)
			if err == nil {
				removed = true
				continue
			}
			if !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		if removed {
			fmt.Println("Learner data deleted.")
		} else {
			fmt.Println("Nothing to delete.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip confirmation and delete immediately")
}
