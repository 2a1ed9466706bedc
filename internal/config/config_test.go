package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for env := range envKeys {
		t.Setenv(env, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
provider: echo
model: from-file
timeout: 5s
markdown: true
log_level: debug
`)
	t.Setenv("FLASH_MODEL", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderEcho, cfg.Provider)
	assert.Equal(t, "from-env", cfg.Model, "env overrides file")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Markdown)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvWeaklyTyped(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FLASH_MARKDOWN", "true")
	t.Setenv("FLASH_TIMEOUT", "90s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.True(t, cfg.Markdown)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("Explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "modle: typo\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Load(writeFile(t, "model: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("Bad duration", func(t *testing.T) {
		_, err := Load(writeFile(t, "timeout: soon\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{
			name:   "Echo needs no key",
			mutate: func(c *Config) { c.Provider = ProviderEcho },
		},
		{
			name:   "OpenAI with key",
			mutate: func(c *Config) { c.APIKey = "sk-test" },
		},
		{
			name:    "OpenAI without key",
			mutate:  func(c *Config) {},
			wantErr: domain.ErrMissingConfig,
			wantMsg: "OPENAI_API_KEY",
		},
		{
			name:    "Missing model",
			mutate:  func(c *Config) { c.Provider = ProviderEcho; c.Model = "" },
			wantErr: domain.ErrMissingConfig,
			wantMsg: "model",
		},
		{
			name:    "Unknown provider",
			mutate:  func(c *Config) { c.Provider = "bard" },
			wantErr: domain.ErrInvalidConfig,
			wantMsg: "bard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Config{Provider: ProviderOpenAI}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "api_key")
	assert.ErrorContains(t, err, "model")
}
