package infra

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Host             string
	Port             string
	DownloadDir      string
	DefaultLocale    string
	PublicBaseURL    string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Host:            getEnv("HOST", "127.0.0.1"),
		Port:            getEnv("PORT", "8777"),
		DownloadDir:     getEnv("DOWNLOAD_DIR", defaultDownloadDir()),
		DefaultLocale:   getEnv("DEFAULT_LOCALE", "fr"),
		HTTPReadTimeout: time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		// Write timeout is disabled by default: /file can stream large media
		// files to slow clients.
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", "http://"+net.JoinHostPort(cfg.Host, cfg.Port))

	if cfg.DownloadDir == "" {
		return nil, fmt.Errorf("DOWNLOAD_DIR is required")
	}

	return cfg, nil
}

// defaultDownloadDir points at the user's standard Downloads folder so output
// files land where a desktop user expects them.
func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Downloads")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
