// Package config loads application configuration and sets up logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Notion   NotionConfig   `yaml:"notion" mapstructure:"notion"`
	MLB      MLBConfig      `yaml:"mlb" mapstructure:"mlb"`
	Snapshot SnapshotConfig `yaml:"snapshot" mapstructure:"snapshot"`
	Audit    AuditConfig    `yaml:"audit" mapstructure:"audit"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// NotionConfig holds the record-store credentials and destination
// database. Token and DatabaseID are required for every run.
type NotionConfig struct {
	Token      string  `yaml:"token" mapstructure:"token"`
	DatabaseID string  `yaml:"database_id" mapstructure:"database_id"`
	RateLimit  float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// MLBConfig configures the schedule provider.
type MLBConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// SnapshotConfig configures where local CSV snapshots land.
type SnapshotConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// AuditConfig configures the local run-audit database.
type AuditConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Secrets default empty so AutomaticEnv can see the keys.
	v.SetDefault("notion.token", "")
	v.SetDefault("notion.database_id", "")
	v.SetDefault("notion.rate_limit", 3.0)
	v.SetDefault("mlb.base_url", "https://statsapi.mlb.com")
	v.SetDefault("mlb.user_agent", "slate-cli/1.0")
	v.SetDefault("mlb.timeout_secs", 20)
	v.SetDefault("snapshot.dir", ".")
	v.SetDefault("audit.path", "slate-audit.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// ValidateNotion checks the credentials every pipeline run needs.
func (c *Config) ValidateNotion() error {
	if c.Notion.Token == "" {
		return eris.New("notion token is required (SLATE_NOTION_TOKEN)")
	}
	if c.Notion.DatabaseID == "" {
		return eris.New("notion database ID is required (SLATE_NOTION_DATABASE_ID)")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
