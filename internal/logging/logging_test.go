package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/platewatch/platewatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
}

func (r *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	r.records = append(r.records, record)
	return nil
}

func (r *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(string) slog.Handler      { return r }

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	info := &recordingHandler{level: slog.LevelInfo}
	errOnly := &recordingHandler{level: slog.LevelError}
	log := slog.New(NewMultiHandler(info, errOnly))

	log.Info("plate checked")
	log.Error("status update failed")

	require.Len(t, info.records, 2)
	require.Len(t, errOnly.records, 1)
	assert.Equal(t, "status update failed", errOnly.records[0].Message)
}

func openLogDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestDBHandlerPersistsErrorRecords(t *testing.T) {
	db := openLogDB(t)

	h := NewDBHandler(db)
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, h.Enabled(context.Background(), slog.LevelError))

	record := slog.NewRecord(time.Now(), slog.LevelError, "check failed", 0)
	record.AddAttrs(
		slog.String("action", "check_plate"),
		slog.String("error", "boom"),
		slog.String("request_id", "req-1"),
	)
	require.NoError(t, h.Handle(context.Background(), record))
	h.flush()

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "check failed", entry.Message)
	assert.Equal(t, "check_plate", entry.Action)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, "req-1", entry.RequestID)
}

func TestDBHandlerStopFlushesBuffered(t *testing.T) {
	db := openLogDB(t)

	h := NewDBHandler(db)

	record := slog.NewRecord(time.Now(), slog.LevelError, "shutdown error", 0)
	record.AddAttrs(slog.String("action", "shutdown"))
	require.NoError(t, h.Handle(context.Background(), record))

	h.Stop()

	assert.Eventually(t, func() bool {
		var count int64
		return db.Model(&models.SystemLog{}).Count(&count).Error == nil && count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "shutdown error", entry.Message)
	assert.Equal(t, "shutdown", entry.Action)
}
