package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Lang      string
	Color     bool
	ReportDir string
	LogFile   string
	Debug     bool
}

func Load() Config {
	cfg := Config{
		Lang:      getEnv("PAYDESK_LANG", "en"),
		Color:     getEnvBool("PAYDESK_COLOR", true),
		ReportDir: getEnv("PAYDESK_REPORT_DIR", filepath.Join("storage", "reports")),
		LogFile:   getEnv("PAYDESK_LOG_FILE", ""),
		Debug:     getEnvBool("PAYDESK_DEBUG", false),
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Lang)) {
	case "en", "ru":
	default:
		return fmt.Errorf("PAYDESK_LANG must be one of: en, ru")
	}
	if strings.TrimSpace(c.ReportDir) == "" {
		return fmt.Errorf("PAYDESK_REPORT_DIR must not be empty")
	}
	return nil
}
