package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "scout.yaml"

// ProjectConfig mirrors the structure of scout.yaml.
type ProjectConfig struct {
	Project struct {
		Name string `yaml:"name"`
	} `yaml:"project"`
	Secrets struct {
		// Dir overrides the secrets directory name relative to the project root.
		Dir string `yaml:"dir"`
		// Extra lists additional secret names provisioned alongside the
		// built-in set.
		Extra []string `yaml:"extra"`
	} `yaml:"secrets"`
}

// LoadProjectConfig reads scout.yaml from the project root. A missing file
// is not an error; it yields a zero config so defaults apply.
func LoadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectRoot, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return &cfg, nil
}
