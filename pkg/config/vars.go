package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnquery"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnquery by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnquery by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnquery/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnquery/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// PatternsFilePath returns the full path to the file with user-defined
// patterns. Absolute names are returned unchanged.
func PatternsFilePath(homeDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ConfigDir(homeDir), name)
}
