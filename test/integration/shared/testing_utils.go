// Package shared contains testing utilities shared between integration tests.
// It provides common functions for setting up test environments, capturing
// output, and verifying the expected secrets layout.
package shared

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fahim-mle/career-scout-platform/cmd"
	"github.com/fahim-mle/career-scout-platform/internal/configs"
	logger "github.com/fahim-mle/career-scout-platform/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SecretNames is the built-in secret set, mirrored here so tests don't
// depend on iteration order.
var SecretNames = []string{"db_password", "grafana_password", "linkedin_password"}

// SetupTestEnvironment creates a temporary project (with a compose file as
// the root marker), changes into it, and registers cleanup that restores
// the working directory and all CLI global state.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}

	tempDir, err := os.MkdirTemp("", "scout-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	// MkdirTemp can hand back a symlinked path (macOS /var -> /private/var);
	// resolve it so path comparisons against command output hold.
	resolved, err := filepath.EvalSymlinks(tempDir)
	if err == nil {
		tempDir = resolved
	}

	// A compose file marks the project root for discovery.
	composePath := filepath.Join(tempDir, "docker-compose.yml")
	if err := os.WriteFile(composePath, []byte("services: {}\n"), 0644); err != nil {
		t.Fatalf("Failed to write compose file: %v", err)
	}

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	cmd.ResetGlobalState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		cmd.ResetGlobalState()
		configs.ProjectScoutSettings = &configs.ProjectSettings{}
		os.RemoveAll(tempDir)
	})

	return tempDir
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to copy stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to copy stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a complete CLI instance running the given secrets
// subcommand arguments, e.g. CreateTestCLI(true, false, "generate", "--force").
func CreateTestCLI(verboseFlag, debugFlag bool, args ...string) *cobra.Command {
	cmd.SetVerbose(verboseFlag)
	cmd.SetDebug(debugFlag)
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	rootCmd := &cobra.Command{
		Use:   "scout",
		Short: "Scout - developer tooling for the Career Scout platform.",
	}
	rootCmd.AddCommand(cmd.GetSecretsCmd())
	rootCmd.SetArgs(append([]string{"secrets"}, args...))

	setBoolFlag(cmd.GetSecretsCmd().PersistentFlags(), "verbose", verboseFlag)
	setBoolFlag(cmd.GetSecretsCmd().PersistentFlags(), "debug", debugFlag)

	return rootCmd
}

func setBoolFlag(flags *pflag.FlagSet, name string, value bool) {
	if err := flags.Set(name, fmt.Sprintf("%t", value)); err != nil {
		log.Fatalf("Failed to set %s flag for testing: %s", name, err)
	}
}

// RunSecrets executes a secrets subcommand and returns its combined output.
func RunSecrets(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd.ResetGlobalState()
	return CaptureOutput(func() error {
		cli := CreateTestCLI(true, false, args...)
		return cli.Execute()
	})
}

// ReadSecretFiles returns the content of every built-in secret file under
// the project's secrets directory, keyed by name. Missing files are absent
// from the map.
func ReadSecretFiles(t *testing.T, projectDir string) map[string]string {
	t.Helper()
	values := make(map[string]string)
	for _, name := range SecretNames {
		data, err := os.ReadFile(filepath.Join(projectDir, "secrets", name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			t.Fatalf("Failed to read secret %s: %v", name, err)
		}
		values[name] = string(data)
	}
	return values
}

// VerifySecretFiles asserts that every built-in secret exists with
// owner-only permissions and a non-empty value.
func VerifySecretFiles(t *testing.T, projectDir string) {
	t.Helper()
	for _, name := range SecretNames {
		path := filepath.Join(projectDir, "secrets", name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Secret file %s was not created: %v", path, err)
			continue
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("Secret file %s has mode %04o, want 0600", path, perm)
		}
		if info.Size() == 0 {
			t.Errorf("Secret file %s is empty", path)
		}
	}
}
