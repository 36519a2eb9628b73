package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080},
		Database:  DatabaseConfig{Driver: "sqlite", Path: "reminders.db"},
		Registrar: RegistrarConfig{MaxPermissionPrompts: 3, MaxSettingsRetries: 3, AttemptRetention: time.Minute},
		Sync:      SyncConfig{Enabled: true, Cron: "0 */15 * * * *"},
		Device:    DeviceConfig{APILevel: 29},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEOREMINDER_DATABASE_DRIVER", "memory")
	t.Setenv("GEOREMINDER_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Registrar.MaxPermissionPrompts)
	assert.Equal(t, 10*time.Minute, cfg.Registrar.AttemptRetention)
	assert.Equal(t, 29, cfg.Device.APILevel)
	assert.False(t, cfg.Line.Enabled())
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "database.driver"},
		{"missing sqlite path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"bad cron", func(c *Config) { c.Sync.Cron = "every minute" }, "sync.cron"},
		{"line without recipient", func(c *Config) {
			c.Line = LineConfig{ChannelSecret: "s", ChannelToken: "t"}
		}, "line.notify_to"},
		{"zero prompts", func(c *Config) { c.Registrar.MaxPermissionPrompts = 0 }, "max_permission_prompts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_DisabledSyncIgnoresCron(t *testing.T) {
	cfg := validConfig()
	cfg.Sync = SyncConfig{Enabled: false, Cron: "nonsense"}
	assert.NoError(t, cfg.Validate())
}
