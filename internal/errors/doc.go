// Package errors provides typed error values for the Scout CLI.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Guard errors: pre-existing secrets block a non-forced run
//   - File errors: directory or secret file issues
//   - Archive errors: sealed archive format or passphrase failures
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(existing) > 0 {
//	    return fmt.Errorf("%w: %s", errors.ErrSecretsExist, strings.Join(existing, ", "))
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, scouterrors.ErrSecretsExist) {
//	    // Show the --force remediation hint
//	}
package errors
