package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	scouterrors "github.com/fahim-mle/career-scout-platform/internal/errors"
)

// SecretFileMode restricts generated files to the owning user.
const SecretFileMode os.FileMode = 0o600

// secretsDirMode keeps the directory itself owner-only as well.
const secretsDirMode os.FileMode = 0o700

// ProvisionResult reports what a successful run wrote.
type ProvisionResult struct {
	SecretsDir string
	Written    []string
}

// EnsureSecretsDir creates the secrets directory if it is missing.
// Idempotent: an existing directory is not an error.
func EnsureSecretsDir(secretsDir string) error {
	if err := os.MkdirAll(secretsDir, secretsDirMode); err != nil {
		return fmt.Errorf("%w: %s: %v", scouterrors.ErrSecretsDirCreate, secretsDir, err)
	}
	return nil
}

// ExistingTargets returns the paths of every spec target that already
// exists in secretsDir.
func ExistingTargets(specs []SecretSpec, secretsDir string) ([]string, error) {
	var existing []string
	for _, spec := range specs {
		path := spec.Path(secretsDir)
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return existing, nil
}

// Provision generates a fresh value for every spec and writes it under
// secretsDir with owner-only permissions.
//
// Without force the run is all-or-nothing: if any target already exists,
// no file is touched and the error wraps ErrSecretsExist, naming every
// conflicting path. With force every target is regenerated. A hard I/O
// failure mid-run aborts remaining targets; already-written files from the
// same run are left in place.
func Provision(specs []SecretSpec, secretsDir string, force bool) (*ProvisionResult, error) {
	if len(specs) == 0 {
		return nil, scouterrors.ErrNoSpecs
	}

	if err := EnsureSecretsDir(secretsDir); err != nil {
		return nil, err
	}

	if !force {
		existing, err := ExistingTargets(specs, secretsDir)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", scouterrors.ErrSecretsExist, strings.Join(existing, ", "))
		}
	}

	result := &ProvisionResult{SecretsDir: secretsDir}
	for _, spec := range specs {
		path := spec.Path(secretsDir)

		token, err := GenerateToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate value for %s: %w", spec.Name, err)
		}

		if err := os.WriteFile(path, []byte(token), SecretFileMode); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		// WriteFile's mode is filtered by the umask and does not apply to a
		// pre-existing file, so always chmod to the contract mode.
		if err := os.Chmod(path, SecretFileMode); err != nil {
			return nil, fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}

		result.Written = append(result.Written, path)
	}

	return result, nil
}

// validSecretName reports whether name is a plain file name that stays
// inside the secrets directory when joined to it.
func validSecretName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// WriteValues writes known secret values (e.g. from an opened archive)
// under secretsDir with the same guard and permission contract as
// Provision. Names come from untrusted input, so anything that would
// resolve outside secretsDir is rejected before any file is touched.
// Returns the written paths sorted by name.
func WriteValues(values map[string]string, secretsDir string, force bool) ([]string, error) {
	if len(values) == 0 {
		return nil, scouterrors.ErrNoSpecs
	}

	names := make([]string, 0, len(values))
	for name := range values {
		if !validSecretName(name) {
			return nil, fmt.Errorf("%w: %q", scouterrors.ErrInvalidSecretName, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if err := EnsureSecretsDir(secretsDir); err != nil {
		return nil, err
	}

	if !force {
		var existing []string
		for _, name := range names {
			path := filepath.Join(secretsDir, name)
			if _, err := os.Stat(path); err == nil {
				existing = append(existing, path)
			} else if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to check %s: %w", path, err)
			}
		}
		if len(existing) > 0 {
			return nil, fmt.Errorf("%w: %s", scouterrors.ErrSecretsExist, strings.Join(existing, ", "))
		}
	}

	var written []string
	for _, name := range names {
		path := filepath.Join(secretsDir, name)
		if err := os.WriteFile(path, []byte(values[name]), SecretFileMode); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := os.Chmod(path, SecretFileMode); err != nil {
			return nil, fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Purge removes every existing spec target from secretsDir and returns the
// removed paths. Missing targets are skipped, not errors.
func Purge(specs []SecretSpec, secretsDir string) ([]string, error) {
	var removed []string
	for _, spec := range specs {
		path := spec.Path(secretsDir)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
