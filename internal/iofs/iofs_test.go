package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	// Create temporary test directory
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	// Verify config directory exists
	configDir := filepath.Join(tmpDir, ".config", "gnquery")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	// Verify cache directory exists
	cacheDir := filepath.Join(tmpDir, ".cache", "gnquery")
	info, err = os.Stat(cacheDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Cache directory should exist")

	// Verify log directory exists
	logDir := filepath.Join(tmpDir, ".local", "share", "gnquery",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	// First call
	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	// Second call should succeed
	err = EnsureDirs(tmpDir)
	require.NoError(t, err)

	// Third call should still succeed
	err = EnsureDirs(tmpDir)
	require.NoError(t, err)
}

// TestEnsureDirs_PermissionsCorrect verifies directory
// permissions are set correctly.
func TestEnsureDirs_PermissionsCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "gnquery")
	info, err := os.Stat(configDir)
	require.NoError(t, err)

	// Check permissions (0755)
	mode := info.Mode().Perm()
	assert.Equal(t, os.FileMode(0755), mode,
		"Directory should have 0755 permissions")
}

// TestTouchDir_CreatesNewDirectory verifies new directory
// creation.
func TestTouchDir_CreatesNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	err := touchDir(newDir)
	require.NoError(t, err)

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")

	// Create directory first
	err := os.MkdirAll(existingDir, 0755)
	require.NoError(t, err)

	// Get original info
	originalInfo, err := os.Stat(existingDir)
	require.NoError(t, err)

	// Call touchDir on existing directory
	err = touchDir(existingDir)
	require.NoError(t, err)

	// Verify directory still exists and unchanged
	newInfo, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.True(t, newInfo.IsDir())
	assert.Equal(t, originalInfo.Mode(), newInfo.Mode())
}

// TestEnsureConfigFile_CreatesFile verifies config file
// is created.
func TestEnsureConfigFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()

	// First ensure directories exist
	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	// Create config file
	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	// Verify file exists
	configPath := filepath.Join(tmpDir, ".config", "gnquery",
		"config.yaml")
	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir(),
		"Config file should be a file, not directory")

	// Verify file is not empty
	assert.Greater(t, info.Size(), int64(0),
		"Config file should not be empty")
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "gnquery",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	// Verify content matches embedded ConfigYAML
	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	// Create config file
	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "gnquery",
		"config.yaml")

	// Modify the file
	customContent := "# Custom config\nengine:\n  row_limit: 10"
	err = os.WriteFile(configPath, []byte(customContent),
		0644)
	require.NoError(t, err)

	// Call EnsureConfigFile again
	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	// Verify file still has custom content
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

// TestEnsureConfigFile_PermissionsCorrect verifies file
// permissions are set correctly.
func TestEnsureConfigFile_PermissionsCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "gnquery",
		"config.yaml")
	info, err := os.Stat(configPath)
	require.NoError(t, err)

	// Check permissions (0644)
	mode := info.Mode().Perm()
	assert.Equal(t, os.FileMode(0644), mode,
		"Config file should have 0644 permissions")
}

// TestConfigYAML_Embedded verifies embedded config is
// not empty.
func TestConfigYAML_Embedded(t *testing.T) {
	assert.NotEmpty(t, ConfigYAML,
		"Embedded ConfigYAML should not be empty")
	assert.Contains(t, ConfigYAML, "database",
		"ConfigYAML should contain database section")
	assert.Contains(t, ConfigYAML, "log",
		"ConfigYAML should contain log section")
	assert.Contains(t, ConfigYAML, "engine",
		"ConfigYAML should contain engine section")
}

// TestEnsurePatternsFile_CreatesFile verifies the patterns
// file is created next to config.yaml.
func TestEnsurePatternsFile_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsurePatternsFile(tmpDir, "patterns.yaml")
	require.NoError(t, err)

	patternsPath := filepath.Join(tmpDir, ".config", "gnquery",
		"patterns.yaml")
	content, err := os.ReadFile(patternsPath)
	require.NoError(t, err)
	assert.Equal(t, PatternsYAML, string(content),
		"Patterns file content should match embedded template")
}

// TestEnsurePatternsFile_AbsolutePath verifies absolute
// names are used as is.
func TestEnsurePatternsFile_AbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()
	patternsPath := filepath.Join(tmpDir, "my-patterns.yaml")

	err := EnsurePatternsFile("/nonexistent-home", patternsPath)
	require.NoError(t, err)

	_, err = os.Stat(patternsPath)
	require.NoError(t, err)
}

// TestEnsurePatternsFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsurePatternsFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	patternsPath := filepath.Join(tmpDir, ".config", "gnquery",
		"patterns.yaml")
	customContent := "patterns:\n  - id: mine\n"
	err = os.WriteFile(patternsPath, []byte(customContent), 0644)
	require.NoError(t, err)

	err = EnsurePatternsFile(tmpDir, "patterns.yaml")
	require.NoError(t, err)

	content, err := os.ReadFile(patternsPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing patterns file should not be overwritten")
}

// TestPatternsYAML_Embedded verifies embedded patterns
// example is not empty.
func TestPatternsYAML_Embedded(t *testing.T) {
	assert.Contains(t, PatternsYAML, "patterns:",
		"PatternsYAML should contain patterns section")
	assert.Contains(t, PatternsYAML, "add_limit",
		"PatternsYAML should document hints")
}
