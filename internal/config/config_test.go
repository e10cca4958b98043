package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost:9000", cfg.MinioEndpoint)
	assert.Equal(t, "protected", cfg.KeyNamespace)
	assert.Equal(t, 35, cfg.Concurrency)
	assert.Equal(t, float64(0), cfg.FetchRPS)
	assert.Empty(t, cfg.MediaBaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONCURRENCY", "5")
	t.Setenv("FETCH_RPS", "2.5")
	t.Setenv("MEDIA_BASE_URL", "https://media.example.com")
	t.Setenv("RECORDS_BASE_URL", "https://records.example.com/")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, 5, cfg.Concurrency)
	assert.Equal(t, 2.5, cfg.FetchRPS)
	assert.Equal(t, "https://media.example.com/", cfg.MediaBaseURL)
	assert.Equal(t, "https://records.example.com/", cfg.RecordsBaseURL)
	assert.True(t, cfg.MinioUseSSL)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("CONCURRENCY", "-3")
	t.Setenv("FETCH_RPS", "lots")

	cfg := Load()

	assert.Equal(t, 35, cfg.Concurrency)
	assert.Equal(t, float64(0), cfg.FetchRPS)
}
