package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SNACKER_TEST_DIR", "/tmp/snacker")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: home},
		{in: "~/data", want: filepath.Join(home, "data")},
		{in: "$SNACKER_TEST_DIR/db", want: "/tmp/snacker/db"},
		{in: "/abs/~user", want: "/abs/~user"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, storage.KindFile, cfg.Storage.Backend)
	assert.Equal(t, ExpandPath(DefaultDataDir), cfg.Storage.Path)
	assert.Equal(t, "₱", cfg.Display.Currency)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
storage:
  backend: SQLite
  path: `+dir+`
display:
  currency: "$"
`), 0600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, storage.KindSQLite, cfg.Storage.Backend)
	assert.Equal(t, dir, cfg.Storage.Path)
	assert.Equal(t, "$", cfg.Display.Currency)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Storage: StorageConfig{Backend: storage.KindFile, Path: "/tmp"},
	}

	tests := []struct {
		wantErr error
		mutate  func(*Config)
		name    string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: common.ErrInvalidConfig},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: common.ErrInvalidConfig},
		{name: "bad backend", mutate: func(c *Config) { c.Storage.Backend = "redis" }, wantErr: common.ErrInvalidConfig},
		{name: "missing path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: common.ErrMissingConfig},
		{name: "memory needs no path", mutate: func(c *Config) { c.Storage = StorageConfig{Backend: storage.KindMemory} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "env-client")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "env-secret")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "env-token")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "From Env")

	v := viper.New()
	v.Set("sheets.client_id", "viper-client")

	cfg, err := LoadSheetsConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "viper-client", cfg.ClientID)
	assert.Equal(t, "env-secret", cfg.ClientSecret)
	assert.Equal(t, "From Env", cfg.SpreadsheetName)

	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	_, err = LoadSheetsConfig(viper.New())
	assert.Error(t, err)
}
