// Package iofs prepares the file system layout of GNquery: configuration,
// cache and log directories, and the default configuration files.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/gnquery/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed patterns.yaml
var PatternsYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless the file
// already exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), ConfigYAML)
}

// EnsurePatternsFile writes the embedded example of user-defined patterns
// unless the file already exists.
func EnsurePatternsFile(homeDir, name string) error {
	return ensureFile(config.PatternsFilePath(homeDir, name), PatternsYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
