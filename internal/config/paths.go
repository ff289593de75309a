// ABOUTME: Standard filesystem paths for gridview configuration
// ABOUTME: Resolves ~/.gridterm/ for global and .gridterm/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".gridterm"
	projectDirName = ".gridterm"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.gridterm/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.gridterm/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// DefaultLogFile returns where gridview logs when no log file is configured.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "gridview.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
