package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSecretsDirName is the directory under the project root that holds
// generated secret files, matching the path the Docker Compose stack mounts.
const DefaultSecretsDirName = "secrets"

type ProjectSettings struct {
	ProjectName string
	ProjectPath string
	SecretsPath string
	ExtraNames  []string
}

// ProjectScoutSettings is populated by InitProjectSettings. Tests may swap
// it to point commands at a temporary directory.
var ProjectScoutSettings = &ProjectSettings{}

// Root marker files checked during upward discovery, in order.
var rootMarkers = []string{
	"scout.yaml",
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yaml",
}

// InitProjectSettings locates the project root and resolves the secrets
// directory, applying scout.yaml overrides when the file exists.
func InitProjectSettings() error {
	root, err := FindProjectRoot()
	if err != nil {
		return fmt.Errorf("error finding project root: %w", err)
	}
	if root == "" {
		// No marker found anywhere above us. Fall back to the working
		// directory so a bare checkout still works.
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("error getting working directory: %w", err)
		}
	}

	cfg, err := LoadProjectConfig(root)
	if err != nil {
		return fmt.Errorf("error loading project config: %w", err)
	}

	name := cfg.Project.Name
	if name == "" {
		name = filepath.Base(root)
	}

	dirName := cfg.Secrets.Dir
	if dirName == "" {
		dirName = DefaultSecretsDirName
	}

	ProjectScoutSettings = &ProjectSettings{
		ProjectName: name,
		ProjectPath: root,
		SecretsPath: filepath.Join(root, dirName),
		ExtraNames:  cfg.Secrets.Extra,
	}

	return nil
}

// FindProjectRoot traverses up from the working directory looking for a
// project root marker. Returns an empty string when no marker is found.
// Stops searching one level above the user's home directory.
func FindProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	stopDir := filepath.Dir(homeDir)

	for {
		for _, marker := range rootMarkers {
			info, err := os.Stat(filepath.Join(currentDir, marker))
			if err == nil {
				if !info.IsDir() {
					return currentDir, nil
				}
			} else if !os.IsNotExist(err) {
				// Surface anything that isn't "file not found" (permission issues, etc.).
				return "", fmt.Errorf("error checking for %s in %s: %w", marker, currentDir, err)
			}
		}

		parentDir := filepath.Dir(currentDir)
		if currentDir == stopDir || parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
