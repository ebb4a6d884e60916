package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/profilectl/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ConfigDir(), home))
	assert.True(t, strings.HasSuffix(paths.ConfigDir(), ".profilectl"))
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
	assert.Equal(t, paths.ConfigDir(), filepath.Dir(paths.ConfigFile()))
}

func TestDotEnvFile(t *testing.T) {
	assert.Equal(t, ".env", paths.DotEnvFile())
}
