package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Registrar  RegistrarConfig  `mapstructure:"registrar"`
	Sync       SyncConfig       `mapstructure:"sync"`
	Line       LineConfig       `mapstructure:"line"`
	Device     DeviceConfig     `mapstructure:"device"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite" or "memory"
	Path   string `mapstructure:"path"`
	LogSQL bool   `mapstructure:"log_sql"`
}

type RepositoryConfig struct {
	// ForceListError makes GetReminders always fail. Development seam only.
	ForceListError bool `mapstructure:"force_list_error"`
}

type RegistrarConfig struct {
	MaxPermissionPrompts int           `mapstructure:"max_permission_prompts"`
	MaxSettingsRetries   int           `mapstructure:"max_settings_retries"`
	AttemptRetention     time.Duration `mapstructure:"attempt_retention"`
}

type SyncConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

type LineConfig struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
	NotifyTo      string `mapstructure:"notify_to"`
}

// Enabled reports whether LINE credentials were provided.
func (l LineConfig) Enabled() bool {
	return l.ChannelSecret != "" && l.ChannelToken != ""
}

type DeviceConfig struct {
	APILevel int `mapstructure:"api_level"`
}

// Load reads configuration from defaults, an optional config file and
// environment variables (GEOREMINDER_SERVER_PORT → server.port).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	v.SetEnvPrefix("GEOREMINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "reminders.db")
	v.SetDefault("database.log_sql", false)
	v.SetDefault("repository.force_list_error", false)
	v.SetDefault("registrar.max_permission_prompts", 3)
	v.SetDefault("registrar.max_settings_retries", 3)
	v.SetDefault("registrar.attempt_retention", 10*time.Minute)
	v.SetDefault("sync.enabled", true)
	v.SetDefault("sync.cron", "0 */15 * * * *")
	v.SetDefault("line.channel_secret", "")
	v.SetDefault("line.channel_token", "")
	v.SetDefault("line.notify_to", "")
	v.SetDefault("device.api_level", 29)
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			errs = append(errs, "database.path is required for the sqlite driver")
		}
	case "memory":
	default:
		errs = append(errs, fmt.Sprintf("database.driver must be sqlite or memory, got %q", c.Database.Driver))
	}
	if c.Registrar.MaxPermissionPrompts <= 0 {
		errs = append(errs, "registrar.max_permission_prompts must be positive")
	}
	if c.Registrar.MaxSettingsRetries < 0 {
		errs = append(errs, "registrar.max_settings_retries must not be negative")
	}
	if c.Registrar.AttemptRetention <= 0 {
		errs = append(errs, "registrar.attempt_retention must be positive")
	}
	if c.Sync.Enabled {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(c.Sync.Cron); err != nil {
			errs = append(errs, fmt.Sprintf("sync.cron is invalid: %v", err))
		}
	}
	if c.Line.Enabled() && c.Line.NotifyTo == "" {
		errs = append(errs, "line.notify_to is required when LINE credentials are set")
	}
	if c.Device.APILevel <= 0 {
		errs = append(errs, "device.api_level must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
