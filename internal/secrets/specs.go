package secrets

import "path/filepath"

// SecretSpec names one secret file provisioned under the secrets directory.
type SecretSpec struct {
	// Name is the file name under the secrets directory.
	Name string
	// Consumer describes what reads the secret, for status output.
	Consumer string
}

// Path returns the spec's target path inside secretsDir.
func (s SecretSpec) Path(secretsDir string) string {
	return filepath.Join(secretsDir, s.Name)
}

// DefaultSpecs returns the fixed secret set the platform's Docker Compose
// stack mounts. The set is deliberately small and curated; scout.yaml can
// append extra names but never removes these.
func DefaultSpecs() []SecretSpec {
	return []SecretSpec{
		{Name: "db_password", Consumer: "PostgreSQL and the backend API"},
		{Name: "grafana_password", Consumer: "Grafana admin login"},
		{Name: "linkedin_password", Consumer: "LinkedIn scraper login"},
	}
}

// SpecsWithExtra appends scout.yaml extra names to the default set,
// skipping duplicates and names that would escape the secrets directory.
func SpecsWithExtra(extra []string) []SecretSpec {
	specs := DefaultSpecs()
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		seen[s.Name] = true
	}
	for _, name := range extra {
		if !validSecretName(name) || seen[name] {
			continue
		}
		seen[name] = true
		specs = append(specs, SecretSpec{Name: name, Consumer: "configured in scout.yaml"})
	}
	return specs
}
