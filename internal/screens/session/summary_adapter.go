package session

import (
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/screens/summary"
	sess "github.com/abhisek/bondten/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data.
func newSummaryScreenAdapter(s *sess.Summary) screen.Screen {
	return summary.New(s)
}
