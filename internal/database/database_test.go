package database

import (
	"path/filepath"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:         "sqlite",
		Path:           filepath.Join(t.TempDir(), "test.db"),
		LogLevel:       "silent",
		ConnectRetries: 1,
	}

	db, err := Open(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Ping())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, parseLogLevel("silent"))
	assert.Equal(t, gormLogger.Error, parseLogLevel("error"))
	assert.Equal(t, gormLogger.Info, parseLogLevel("info"))
	assert.Equal(t, gormLogger.Warn, parseLogLevel(""))
}
