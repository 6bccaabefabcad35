package cmd

import (
	"fmt"

	"github.com/abhisek/bondten/internal/adaptive"
	"github.com/abhisek/bondten/internal/app"
	"github.com/abhisek/bondten/internal/problemgen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startLevel and rounds override the snapshot level and session length
// when > 0.
func runApp(cmd *cobra.Command, startLevel, rounds int) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		Generator:    problemgen.New(problemgen.DefaultConfig()),
		Engine:       adaptive.NewEngine(adaptive.DefaultConfig()),
		Rounds:       rounds,
		StartLevel:   startLevel,
		Version:      version,
	})
}
