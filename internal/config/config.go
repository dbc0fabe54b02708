package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port          int              `json:"port"`
	JWTSecret     string           `json:"jwt_secret"`
	JWTTTLHours   int              `json:"jwt_ttl_hours"`
	Database      DatabaseConfig   `json:"database"`
	LogConfig     logger.LogConfig `json:"log_config"`
	CORSAllowlist []string         `json:"cors_allowlist"`
	OAuth         OAuthConfig      `json:"oauth"`
	Reminder      ReminderConfig   `json:"reminder"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

type OAuthConfig struct {
	Google ProviderConfig `json:"google"`
}

type ProviderConfig struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RedirectURL  string   `json:"redirect_url"`
	Scopes       []string `json:"scopes"`
}

type ReminderConfig struct {
	Enabled      bool          `json:"enabled"`
	Cron         string        `json:"cron"`
	RadiusMeters float64       `json:"radius_meters"`
	ProbeAddr    string        `json:"probe_addr"`
	ProbeTimeout int           `json:"probe_timeout_ms"`
	Webhook      WebhookConfig `json:"webhook"`
}

type WebhookConfig struct {
	URL   string `json:"url"`
	Token string `json:"token"`
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
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Reminder.Cron == "" {
		cfg.Reminder.Cron = "0 * * * *"
	}
	if cfg.Reminder.RadiusMeters == 0 {
		cfg.Reminder.RadiusMeters = 1000
	}
	if cfg.Reminder.ProbeAddr == "" {
		cfg.Reminder.ProbeAddr = "1.1.1.1:53"
	}
	if cfg.Reminder.ProbeTimeout == 0 {
		cfg.Reminder.ProbeTimeout = 3000
	}
	return &cfg, nil
}
