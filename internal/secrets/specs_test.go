package secrets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"db_password", "grafana_password", "linkedin_password"}, names)
}

func TestSecretSpecPath(t *testing.T) {
	spec := SecretSpec{Name: "db_password"}
	assert.Equal(t, filepath.Join("/tmp/project/secrets", "db_password"), spec.Path("/tmp/project/secrets"))
}

func TestSpecsWithExtra(t *testing.T) {
	specs := SpecsWithExtra([]string{"smtp_password", "", "db_password", "smtp_password", "../evil", "nested/name"})

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	// Built-ins stay first; empty, duplicate, and path-escaping names are dropped.
	assert.Equal(t, []string{"db_password", "grafana_password", "linkedin_password", "smtp_password"}, names)
}
