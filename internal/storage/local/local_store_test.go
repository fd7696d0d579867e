package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellersuite/internal/config"
	"sellersuite/internal/domain"
	"sellersuite/internal/port"
)

func newStore(t *testing.T) (port.FileStore, *config.StorageConfig) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.StorageConfig{
		UploadDir: filepath.Join(root, "uploads"),
		OutputDir: filepath.Join(root, "outputs"),
	}
	s, err := NewLocalStore(cfg)
	require.NoError(t, err)
	return s, cfg
}

func TestLocalStore_SaveOpen(t *testing.T) {
	s, cfg := newStore(t)
	ctx := context.Background()

	err := s.Save(ctx, port.SaveInput{Area: port.AreaUploads, Name: "20250509_140307_may.xlsx", Body: strings.NewReader("payload")})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(cfg.UploadDir, "20250509_140307_may.xlsx"))
	require.NoError(t, err)

	rc, err := s.Open(ctx, port.AreaUploads, "20250509_140307_may.xlsx")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = s.Open(ctx, port.AreaOutputs, "20250509_140307_may.xlsx")
	assert.ErrorIs(t, err, domain.ErrNotFound, "areas are separate")
}

func TestLocalStore_OpenMissing(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Open(context.Background(), port.AreaOutputs, "b2cs_monthly_20250509_140307.csv")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocalStore_RejectsPaths(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "..", "../secret.csv", "nested/report.csv"} {
		_, err := s.Open(ctx, port.AreaOutputs, name)
		assert.ErrorIs(t, err, domain.ErrInvalidFilename, name)
	}
}

func TestLocalStore_Overwrite(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, port.SaveInput{Area: port.AreaOutputs, Name: "r.csv", Body: strings.NewReader("one")}))
	require.NoError(t, s.Save(ctx, port.SaveInput{Area: port.AreaOutputs, Name: "r.csv", Body: strings.NewReader("two")}))

	rc, err := s.Open(ctx, port.AreaOutputs, "r.csv")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "two", string(data))
}

func TestLocalStore_Ping(t *testing.T) {
	s, cfg := newStore(t)
	require.NoError(t, s.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(cfg.OutputDir))
	assert.Error(t, s.Ping(context.Background()))
}
