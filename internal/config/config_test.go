package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("OWNER_ID", "42")
	t.Setenv("REQUIRED_CHANNEL", "@testchannel")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		errKey string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", errKey: "BOT_TOKEN"},
		{name: "missing owner id", unset: "OWNER_ID", errKey: "OWNER_ID"},
		{name: "missing required channel", unset: "REQUIRED_CHANNEL", errKey: "REQUIRED_CHANNEL"},
		{name: "missing db password", unset: "DB_PASSWORD", errKey: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")
			os.Unsetenv(tt.unset)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errKey)
		})
	}
}

func TestLoad_InvalidOwnerID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OWNER_ID", "not-a-number")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OWNER_ID")
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "MAX_FILE_SIZE_MB", "DOWNLOAD_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(42), cfg.OwnerID)
	assert.Equal(t, "@testchannel", cfg.RequiredChannel)
	assert.Equal(t, int64(2048), cfg.MaxFileSizeMB)
	assert.Equal(t, 30*time.Minute, cfg.DownloadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "savebot", cfg.Database.Name)
	assert.Equal(t, "savebot", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_FILE_SIZE_MB", "100")
	t.Setenv("DOWNLOAD_TIMEOUT", "5m")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, int64(100), cfg.MaxFileSizeMB)
	assert.Equal(t, 5*time.Minute, cfg.DownloadTimeout)
}

func TestLoad_InvalidMaxFileSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_FILE_SIZE_MB", "zero")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MAX_FILE_SIZE_MB")
}
