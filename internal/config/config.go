// Package config reads the importer's environment configuration. main loads
// the .env file before calling Load.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the importer reads from the environment.
type Config struct {
	DatabaseURL string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	Bucket         string

	// KeyNamespace is the leading path segment of every storage key.
	KeyNamespace string

	// MediaBaseURL fronts episode images, RecordsBaseURL fronts the public
	// audio records, OriginBaseURL is the raw bucket origin. All end with "/".
	MediaBaseURL   string
	RecordsBaseURL string
	OriginBaseURL  string

	// Concurrency caps simultaneously processed feed items.
	Concurrency int

	// FetchRPS paces outbound audio fetches; 0 leaves them unpaced.
	FetchRPS float64
}

// Load builds the configuration from the environment.
func Load() *Config {
	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MinioEndpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:         getenv("BUCKET", "podcast-records"),
		KeyNamespace:   getenv("KEY_NAMESPACE", "protected"),
		MediaBaseURL:   baseURL(getenv("MEDIA_BASE_URL", "")),
		RecordsBaseURL: baseURL(getenv("RECORDS_BASE_URL", "")),
		OriginBaseURL:  baseURL(getenv("ORIGIN_BASE_URL", "")),
		Concurrency:    intenv("CONCURRENCY", 35),
		FetchRPS:       floatenv("FETCH_RPS", 0),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intenv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func floatenv(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func baseURL(v string) string {
	if v == "" {
		return v
	}
	return strings.TrimSuffix(v, "/") + "/"
}
