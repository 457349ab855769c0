package picker

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the platform-appropriate default data directory
// for appName: the user configuration directory when available, otherwise
// a dot-directory under the home directory.
func DefaultDataDir(appName string) string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appName)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, "."+appName)
	}
	return "." + appName
}
