package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 30*time.Second, cfg.AnalyticsTimeout())
	counts := cfg.BatchCounts()
	assert.Len(t, counts, 4)
	assert.Equal(t, 10, counts[domain.DatasetTraining2])
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfmc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9999"
cache:
  ttl: 10m
title_data:
  namespace: testns
  batches:
    training: 1
    bogus: 7
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL())
	assert.Equal(t, "testns", cfg.TitleData.Namespace)

	counts := cfg.BatchCounts()
	assert.Equal(t, 1, counts[domain.DatasetTraining])
	// Unknown dataset names in YAML are dropped.
	assert.Len(t, counts, 1)
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("SFMC_LISTEN", ":7777")
	t.Setenv("SFMC_CACHE_TTL", "90s")
	t.Setenv("SFMC_TITLEDATA_LOCAL_DB", "/tmp/mirror.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Listen)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL())
	assert.Equal(t, "/tmp/mirror.db", cfg.TitleData.LocalDB)
}

func TestBadDurationFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Cache.TTL = "not-a-duration"
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
