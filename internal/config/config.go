package config

import (
	"os"
	"strconv"
)

// Config holds the runtime configuration, read once at startup.
type Config struct {
	Port            string
	MaxUploadBytes  int64 // largest accepted CSV upload
	PreviewRows     int   // default rows in the dataset preview
	UploadRateLimit int   // uploads per minute per client IP
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	maxUpload := int64(200 << 20) // 200MB: the table must fit in memory anyway
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxUpload = n
		}
	}

	previewRows := 10
	if v := os.Getenv("PREVIEW_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			previewRows = n
		}
	}

	uploadRate := 20
	if v := os.Getenv("UPLOAD_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			uploadRate = n
		}
	}

	return &Config{
		Port:            port,
		MaxUploadBytes:  maxUpload,
		PreviewRows:     previewRows,
		UploadRateLimit: uploadRate,
	}
}
