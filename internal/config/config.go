package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int            `json:"port"`
	Database    DatabaseConfig `json:"database"`
	Share       ShareConfig    `json:"share"`
	CORSOrigins []string       `json:"cors_origins"`
	// ResolveLimitSeconds throttles public resolution per client IP;
	// 0 disables the limiter.
	ResolveLimitSeconds int              `json:"resolve_limit_seconds"`
	LogConfig           logger.LogConfig `json:"log_config"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type ShareConfig struct {
	// BaseURL is prepended to "/s/<token>" when building share links.
	BaseURL string `json:"base_url"`
	// TokenBytes is the raw entropy per token before encoding.
	TokenBytes int `json:"token_bytes"`
	// SweepSpec is a cron spec for purging expired share rows; empty
	// disables the sweep.
	SweepSpec string `json:"sweep_spec"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.Share.BaseURL == "" {
		cfg.Share.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.Share.TokenBytes == 0 {
		cfg.Share.TokenBytes = 18
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
