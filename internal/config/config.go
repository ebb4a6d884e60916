package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"
)

// Environment variables that override values from the config file.
const (
	EnvServer   = "PROFILECTL_SERVER"
	EnvUsername = "PROFILECTL_USERNAME"
	EnvOpener   = "PROFILECTL_OPENER"
)

const (
	DefaultServer       = "http://localhost:3000"
	DefaultTimeout      = 30 * time.Second
	DefaultDefaultsPath = "/api/default-params"
)

// Config represents ~/.profilectl/config.yaml.
type Config struct {
	Server       string  `yaml:"server"`
	Username     string  `yaml:"username,omitempty"`
	Timeout      string  `yaml:"timeout,omitempty"`
	DefaultsPath string  `yaml:"defaults_path,omitempty"`
	Display      Display `yaml:"display,omitempty"`
	Opener       Opener  `yaml:"opener,omitempty"`
}

// Display holds list rendering preferences.
type Display struct {
	// ZeroAsNA renders zero-valued parameters as "n/a". Nil means true.
	ZeroAsNA *bool `yaml:"zero_as_na,omitempty"`
}

// Opener configures where profile update notifications are delivered.
type Opener struct {
	URL            string   `yaml:"url,omitempty"`
	Origin         string   `yaml:"origin,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// Default returns a config with default values.
func Default() Config {
	return Config{
		Server:       DefaultServer,
		Timeout:      DefaultTimeout.String(),
		DefaultsPath: DefaultDefaultsPath,
	}
}

// Parse parses config.yaml bytes into a Config. Missing keys keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.TimeoutDuration(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overrides config values with non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvServer)); v != "" {
		c.Server = v
	}
	if v := strings.TrimSpace(getenv(EnvUsername)); v != "" {
		c.Username = v
	}
	if v := strings.TrimSpace(getenv(EnvOpener)); v != "" {
		c.Opener.URL = v
	}
}

// TimeoutDuration parses the request timeout. Empty means DefaultTimeout.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parsing config: invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parsing config: timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}

// ZeroAsNA reports whether zero-valued parameters render as "n/a".
func (c Config) ZeroAsNA() bool {
	if c.Display.ZeroAsNA == nil {
		return true
	}
	return *c.Display.ZeroAsNA
}
