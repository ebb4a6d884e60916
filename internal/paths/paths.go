package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.profilectl.
func ConfigDir() string {
	return filepath.Join(home(), ".profilectl")
}

// ConfigFile returns ~/.profilectl/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DotEnvFile returns the .env file in the working directory.
func DotEnvFile() string {
	return ".env"
}
