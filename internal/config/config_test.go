package config

import (
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, StorageLocal, cfg.Storage.Backend)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "outputs", cfg.Storage.OutputDir)
	assert.Equal(t, int64(50*1024*1024), cfg.Storage.MaxFileSize())
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Empty(t, cfg.Portals.Supported)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SELLERSUITE_SERVER_ENVIRONMENT", "production")
	t.Setenv("SELLERSUITE_STORAGE_BACKEND", "S3")
	t.Setenv("SELLERSUITE_S3_BUCKET", "gst-reports")
	t.Setenv("SELLERSUITE_STORAGE_MAX_FILE_SIZE_MB", "32")
	t.Setenv("SELLERSUITE_CORS_ALLOWED_ORIGINS", " https://app.example.com , ,https://admin.example.com")
	t.Setenv("SELLERSUITE_PORTALS_SUPPORTED", "Amazon,flipkart")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, StorageS3, cfg.Storage.Backend)
	assert.Equal(t, "gst-reports", cfg.S3.Bucket)
	assert.Equal(t, int64(32), cfg.Storage.MaxFileSizeMB)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"amazon", "flipkart"}, cfg.Portals.Supported)
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_ExplicitPortWins(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SELLERSUITE_SERVER_PORT", ":7000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_InvalidStorageBackend(t *testing.T) {
	t.Setenv("SELLERSUITE_STORAGE_BACKEND", "gcs")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestLoad_InvalidMaxFileSize(t *testing.T) {
	t.Setenv("SELLERSUITE_STORAGE_MAX_FILE_SIZE_MB", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "max_file_size_mb")
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	t.Setenv("SELLERSUITE_STORAGE_BACKEND", "s3")

	_, err := Load()
	assert.ErrorContains(t, err, "s3.bucket")
}

func TestLoad_LogSettings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.GinMode())
	assert.Equal(t, log.LstdFlags|log.Lmicroseconds, cfg.Log.Flags())

	t.Setenv("SELLERSUITE_LOG_LEVEL", "info")
	t.Setenv("SELLERSUITE_LOG_FORMAT", "Plain")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Log.GinMode())
	assert.Equal(t, 0, cfg.Log.Flags())
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("SELLERSUITE_LOG_FORMAT", "json")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown log format")
}
