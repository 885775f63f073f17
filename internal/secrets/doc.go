// Package secrets provisions the Career Scout local development secrets.
//
// Each secret is one plain-text file under the project's secrets directory,
// holding a single high-entropy value with no trailing newline. Consumers
// read the files directly (Docker secret mounts, *_FILE-style indirection
// in the backend), so there is no wrapper format.
//
// # Provisioning Contract
//
// Provision is all-or-nothing in safe mode: if any target file already
// exists and force is off, nothing is written and the caller gets a
// collective error naming every conflicting path. With force, every target
// is regenerated unconditionally.
//
// Values are 32 bytes from crypto/rand, encoded as unpadded URL-safe
// base64, written with mode 0600. The backend strips trailing whitespace
// when reading *_FILE secrets, but Postgres and Grafana mount the files
// verbatim, so the generator never appends a newline.
//
// # Known Limitation
//
// The guard is a plain check-then-write; two concurrent non-forced runs
// can both see an empty directory and both generate. The tool is a
// single-operator local utility, so no locking is attempted.
//
// # Sealed Archives
//
// SealArchive and OpenArchive move a secret set between dev machines
// without committing plaintext. The key is derived from a passphrase with
// scrypt and the payload is sealed with NaCl secretbox, using a random
// 24-byte nonce prepended to the ciphertext. Sealing the same set twice
// produces different output.
package secrets
