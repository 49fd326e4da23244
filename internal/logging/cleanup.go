package logging

import (
	"log/slog"
	"time"

	"github.com/platewatch/platewatch/internal/models"
	"gorm.io/gorm"
)

const logRetention = 30 * 24 * time.Hour

// StartCleanup runs a daily goroutine that prunes system_logs past the
// retention window. Closing done stops it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := db.Where("timestamp < ?", time.Now().Add(-logRetention)).Delete(&models.SystemLog{})
				switch {
				case result.Error != nil:
					slog.Error("log cleanup failed", "error", result.Error)
				case result.RowsAffected > 0:
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
