package secrets

import (
	"fmt"
	"os"
)

// TargetStatus describes one spec target on disk.
type TargetStatus struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Consumer string `json:"consumer"`
	Exists   bool   `json:"exists"`
	Mode     string `json:"mode,omitempty"`
	// Insecure is set when the file grants any group or world access.
	Insecure bool `json:"insecure"`
}

// Inspect reports the on-disk state of every spec target. It never writes.
func Inspect(specs []SecretSpec, secretsDir string) ([]TargetStatus, error) {
	statuses := make([]TargetStatus, 0, len(specs))
	for _, spec := range specs {
		status := TargetStatus{
			Name:     spec.Name,
			Path:     spec.Path(secretsDir),
			Consumer: spec.Consumer,
		}

		info, err := os.Stat(status.Path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to stat %s: %w", status.Path, err)
			}
		} else {
			perm := info.Mode().Perm()
			status.Exists = true
			status.Mode = fmt.Sprintf("%04o", perm)
			status.Insecure = perm&0o077 != 0
		}

		statuses = append(statuses, status)
	}
	return statuses, nil
}

// ReadValues loads the current content of every existing spec target,
// keyed by secret name. Used when sealing an archive.
func ReadValues(specs []SecretSpec, secretsDir string) (map[string]string, error) {
	values := make(map[string]string)
	for _, spec := range specs {
		path := spec.Path(secretsDir)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		values[spec.Name] = string(data)
	}
	return values, nil
}
