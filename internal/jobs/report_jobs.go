package jobs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"declarations-backend/internal/logger"
)

// staleAfter is how long a staged PDF may sit in the tmp directory
// before cleanup assumes its generation crashed mid-flight.
const staleAfter = time.Hour

// SendDailyOpsReport emails the current month's request overview to
// every administrator.
func (jr *JobRunner) SendDailyOpsReport() {
	jr.runWithRecovery("SendDailyOpsReport", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		admins, err := jr.userRepo.ListAdmins(ctx)
		if err != nil {
			logger.Error("Failed to list admins for ops report", "error", err)
			return
		}
		if len(admins) == 0 {
			return
		}

		now := time.Now().UTC()
		// The analytics service checks the caller's admin flag, so any
		// admin serves as the reporting identity.
		overview, err := jr.analytics.Overview(ctx, admins[0].ID, int(now.Month()), now.Year())
		if err != nil {
			logger.Error("Failed to build ops report overview", "error", err)
			return
		}

		for _, admin := range admins {
			if err := jr.email.SendOpsReport(ctx, admin.Email, admin.Name, now.Month(), now.Year(), overview); err != nil {
				logger.Error("Failed to send ops report", "admin", admin.Email, "error", err)
			}
		}
	})
}

// CleanupStagedFiles removes staged PDFs left behind by generations
// that crashed before their deferred cleanup ran.
func (jr *JobRunner) CleanupStagedFiles() {
	jr.runWithRecovery("CleanupStagedFiles", func() {
		tmpDir := jr.config.Generation.TmpDir
		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Error("Failed to read staging directory", "dir", tmpDir, "error", err)
			}
			return
		}

		cutoff := time.Now().Add(-staleAfter)
		removed := 0
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil || entry.IsDir() || info.ModTime().After(cutoff) {
				continue
			}
			if err := os.Remove(filepath.Join(tmpDir, entry.Name())); err != nil {
				logger.Warn("Failed to remove stale staged file", "file", entry.Name(), "error", err)
				continue
			}
			removed++
		}
		if removed > 0 {
			logger.Info("Removed stale staged files", "count", removed)
		}
	})
}
