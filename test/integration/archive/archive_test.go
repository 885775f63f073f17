package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fahim-mle/career-scout-platform/test/integration/shared"
)

// TestSecretsExportImport covers the sealed archive round trip between
// `scout secrets export` and `scout secrets import`.
func TestSecretsExportImport(t *testing.T) {
	t.Run("RoundTrip", testArchiveRoundTrip)
	t.Run("ImportGuardWithoutForce", testImportGuard)
	t.Run("WrongPassphrase", testWrongPassphrase)
	t.Run("ExportRequiresSecrets", testExportRequiresSecrets)
	t.Run("ExportRequiresPassphrase", testExportRequiresPassphrase)
}

func testArchiveRoundTrip(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	if output, err := shared.RunSecrets(t, "generate"); err != nil {
		t.Fatalf("Generate failed: %v\nOutput: %s", err, output)
	}
	original := shared.ReadSecretFiles(t, tempDir)

	archivePath := filepath.Join(tempDir, "dev.sealed")
	output, err := shared.RunSecrets(t, "export", "-o", archivePath, "--passphrase", "round-trip-test")
	if err != nil {
		t.Fatalf("Export failed: %v\nOutput: %s", err, output)
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		t.Fatalf("Archive was not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Archive has mode %04o, want 0600", perm)
	}

	if output, err := shared.RunSecrets(t, "purge", "--yes"); err != nil {
		t.Fatalf("Purge failed: %v\nOutput: %s", err, output)
	}

	output, err = shared.RunSecrets(t, "import", archivePath, "--passphrase", "round-trip-test")
	if err != nil {
		t.Fatalf("Import failed: %v\nOutput: %s", err, output)
	}

	restored := shared.ReadSecretFiles(t, tempDir)
	if len(restored) != len(original) {
		t.Fatalf("Restored %d secrets, want %d", len(restored), len(original))
	}
	for name, value := range original {
		if restored[name] != value {
			t.Errorf("Secret %s does not match the exported value", name)
		}
	}
	shared.VerifySecretFiles(t, tempDir)
}

func testImportGuard(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	if output, err := shared.RunSecrets(t, "generate"); err != nil {
		t.Fatalf("Generate failed: %v\nOutput: %s", err, output)
	}

	archivePath := filepath.Join(tempDir, "dev.sealed")
	if output, err := shared.RunSecrets(t, "export", "-o", archivePath, "--passphrase", "guard-test"); err != nil {
		t.Fatalf("Export failed: %v\nOutput: %s", err, output)
	}
	before := shared.ReadSecretFiles(t, tempDir)

	// Targets still exist, so a non-forced import must refuse.
	output, err := shared.RunSecrets(t, "import", archivePath, "--passphrase", "guard-test")
	if err == nil {
		t.Fatalf("Import onto existing secrets should have failed\nOutput: %s", output)
	}
	if !strings.Contains(output, "--force") {
		t.Errorf("Output does not mention the --force remediation: %s", output)
	}

	after := shared.ReadSecretFiles(t, tempDir)
	for name, value := range before {
		if after[name] != value {
			t.Errorf("Guarded import modified secret %s", name)
		}
	}

	// Forced import succeeds.
	if output, err := shared.RunSecrets(t, "import", archivePath, "--passphrase", "guard-test", "--force"); err != nil {
		t.Fatalf("Forced import failed: %v\nOutput: %s", err, output)
	}
}

func testWrongPassphrase(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	if output, err := shared.RunSecrets(t, "generate"); err != nil {
		t.Fatalf("Generate failed: %v\nOutput: %s", err, output)
	}

	archivePath := filepath.Join(tempDir, "dev.sealed")
	if output, err := shared.RunSecrets(t, "export", "-o", archivePath, "--passphrase", "correct"); err != nil {
		t.Fatalf("Export failed: %v\nOutput: %s", err, output)
	}

	if output, err := shared.RunSecrets(t, "purge", "--yes"); err != nil {
		t.Fatalf("Purge failed: %v\nOutput: %s", err, output)
	}

	output, err := shared.RunSecrets(t, "import", archivePath, "--passphrase", "incorrect")
	if err == nil {
		t.Fatalf("Import with wrong passphrase should have failed\nOutput: %s", output)
	}

	// Nothing restored on failure.
	if restored := shared.ReadSecretFiles(t, tempDir); len(restored) != 0 {
		t.Errorf("Import with wrong passphrase wrote %d secrets", len(restored))
	}
}

func testExportRequiresSecrets(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	archivePath := filepath.Join(tempDir, "dev.sealed")
	output, err := shared.RunSecrets(t, "export", "-o", archivePath, "--passphrase", "empty-test")
	if err == nil {
		t.Fatalf("Export with no secrets should have failed\nOutput: %s", output)
	}
	if _, err := os.Stat(archivePath); !os.IsNotExist(err) {
		t.Errorf("Archive should not have been written")
	}
}

func testExportRequiresPassphrase(t *testing.T) {
	tempDir := shared.SetupTestEnvironment(t)

	if output, err := shared.RunSecrets(t, "generate"); err != nil {
		t.Fatalf("Generate failed: %v\nOutput: %s", err, output)
	}

	os.Unsetenv("SCOUT_ARCHIVE_PASSPHRASE")
	archivePath := filepath.Join(tempDir, "dev.sealed")
	output, err := shared.RunSecrets(t, "export", "-o", archivePath)
	if err == nil {
		t.Fatalf("Export without a passphrase should have failed\nOutput: %s", output)
	}
	if !strings.Contains(output+err.Error(), "passphrase") {
		t.Errorf("Error does not mention the passphrase requirement: %v", err)
	}
}
