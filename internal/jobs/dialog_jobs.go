package jobs

import (
	"rentline-backend/internal/logger"
)

// CleanupDialogSessions drops expired and finished conflict-resolution
// dialog sessions from the in-memory store.
func (jr *JobRunner) CleanupDialogSessions() {
	jr.runWithRecovery("CleanupDialogSessions", func() {
		removed := jr.sessions.Cleanup()
		logger.Info("Cleaned up dialog sessions", "removed", removed)
	})
}
