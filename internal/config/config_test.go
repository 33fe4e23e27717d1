package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    StoreMode
		wantErr bool
	}{
		{"file", StoreModeFile, false},
		{"memory", StoreModeMemory, false},
		{" MEMORY ", StoreModeMemory, false},
		{"", StoreModeFile, false},
		{"postgres", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStoreMode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(8000), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, StoreModeFile, cfg.Database.Mode)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.False(t, cfg.API.ReadOnly)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_MODE", "memory")
	t.Setenv("READ_ONLY", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(9090), cfg.HTTP.Port)
	assert.Equal(t, StoreModeMemory, cfg.Database.Mode)
	assert.True(t, cfg.API.ReadOnly)
}

func TestNewConfig_InvalidStoreMode(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORE_MODE", "cloud")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_LoadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE_PATH=/tmp/from-env-file.db\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Cleanup(func() { os.Unsetenv("DATABASE_PATH") })

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env-file.db", cfg.Database.Path)
}
