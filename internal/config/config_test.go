package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/profilectl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		input := []byte(`server: https://chat.example.com
username: alice
timeout: 5s
defaults_path: /api/params/default
display:
  zero_as_na: false
opener:
  url: ws://localhost:9000/opener
  origin: https://chat.example.com
  allowed_origins:
    - ws://localhost:9000
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "https://chat.example.com", cfg.Server)
		assert.Equal(t, "alice", cfg.Username)
		assert.Equal(t, "/api/params/default", cfg.DefaultsPath)
		assert.False(t, cfg.ZeroAsNA())
		assert.Equal(t, "ws://localhost:9000/opener", cfg.Opener.URL)
		assert.Equal(t, "https://chat.example.com", cfg.Opener.Origin)
		assert.Equal(t, []string{"ws://localhost:9000"}, cfg.Opener.AllowedOrigins)

		d, err := cfg.TimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, d)
	})

	t.Run("empty config keeps defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultServer, cfg.Server)
		assert.Equal(t, config.DefaultDefaultsPath, cfg.DefaultsPath)
		assert.True(t, cfg.ZeroAsNA())

		d, err := cfg.TimeoutDuration()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultTimeout, d)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		_, err := config.Parse([]byte(`timeout: soon`))
		assert.ErrorContains(t, err, "invalid timeout")
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := config.Parse([]byte(`timeout: -1s`))
		assert.ErrorContains(t, err, "must be positive")
	})
}

func TestMarshalConfig(t *testing.T) {
	off := false
	cfg := config.Default()
	cfg.Username = "alice"
	cfg.Display.ZeroAsNA = &off
	cfg.Opener.AllowedOrigins = []string{"http://a"}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("username: bob\n"), 0o644))
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "bob", cfg.Username)
		assert.Equal(t, config.DefaultServer, cfg.Server)
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvServer:   "http://api.test",
		config.EnvUsername: " carol ",
		config.EnvOpener:   "-",
	}
	cfg := config.Default()
	cfg.Username = "alice"
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "http://api.test", cfg.Server)
	assert.Equal(t, "carol", cfg.Username)
	assert.Equal(t, "-", cfg.Opener.URL)
}

func TestApplyEnvKeepsFileValues(t *testing.T) {
	cfg := config.Default()
	cfg.Username = "alice"
	cfg.ApplyEnv(func(string) string { return "" })
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, config.DefaultServer, cfg.Server)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadDotEnv(filepath.Join(dir, ".env")))
	})

	t.Run("sets variables", func(t *testing.T) {
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("PROFILECTL_TEST_DOTENV=yes\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("PROFILECTL_TEST_DOTENV") })

		require.NoError(t, config.LoadDotEnv(path))
		assert.Equal(t, "yes", os.Getenv("PROFILECTL_TEST_DOTENV"))
	})
}
