package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "flash.yaml"

// Providers understood by the chat driver.
const (
	ProviderOpenAI = "openai"
	ProviderEcho   = "echo"
)

// Config is the whole runtime configuration of the flash binaries.
type Config struct {
	Provider    string        `yaml:"provider" mapstructure:"provider"`
	Model       string        `yaml:"model" mapstructure:"model"`
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Markdown    bool          `yaml:"markdown" mapstructure:"markdown"`
	LogLevel    string        `yaml:"log_level" mapstructure:"log_level"`
	LogFile     string        `yaml:"log_file" mapstructure:"log_file"`
	TraceFile   string        `yaml:"trace_file" mapstructure:"trace_file"`
	MetricsFile string        `yaml:"metrics_file" mapstructure:"metrics_file"`
}

// envKeys maps environment variables onto config keys.
var envKeys = map[string]string{
	"FLASH_PROVIDER":     "provider",
	"FLASH_MODEL":        "model",
	"OPENAI_API_KEY":     "api_key",
	"OPENAI_BASE_URL":    "base_url",
	"FLASH_TIMEOUT":      "timeout",
	"FLASH_MARKDOWN":     "markdown",
	"FLASH_LOG_LEVEL":    "log_level",
	"FLASH_LOG_FILE":     "log_file",
	"FLASH_TRACE_FILE":   "trace_file",
	"FLASH_METRICS_FILE": "metrics_file",
}

// Default returns the built-in configuration. A zero Timeout means the model call is not bounded.
func Default() Config {
	return Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o-mini",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, then the YAML file at path, then the environment.
// An empty path falls back to DefaultFile, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	for env, key := range envKeys {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			raw[key] = v
		}
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate reports every missing or malformed field at once.
func (c Config) Validate() error {
	var missing, invalid []string

	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			missing = append(missing, "api_key (OPENAI_API_KEY)")
		}
	case ProviderEcho:
	default:
		invalid = append(invalid, fmt.Sprintf("provider %q (want %s or %s)", c.Provider, ProviderOpenAI, ProviderEcho))
	}
	if c.Model == "" {
		missing = append(missing, "model (FLASH_MODEL)")
	}
	if c.Timeout < 0 {
		invalid = append(invalid, fmt.Sprintf("timeout %s", c.Timeout))
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(invalid, ", ")))
	}
	return errors.Join(errs...)
}
