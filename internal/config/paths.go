package config

import (
	"os"
	"path/filepath"
)

// GetHome returns ALTTEXT_HOME or ~/.alttext by default
func GetHome() string {
	home := os.Getenv("ALTTEXT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".alttext"
		}
		return filepath.Join(homeDir, ".alttext")
	}
	return ExpandPath(home)
}

// GetDBPath returns $ALTTEXT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $ALTTEXT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $ALTTEXT_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
