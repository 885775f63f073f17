package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strings"

	scouterrors "github.com/fahim-mle/career-scout-platform/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// Archive layout: salt (16 bytes) || nonce (24 bytes) || secretbox ciphertext.
const (
	archiveSaltLen  = 16
	archiveNonceLen = 24
)

// scrypt parameters for passphrase key derivation (N, r, p).
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func deriveArchiveKey(passphrase string, salt []byte) (*[32]byte, error) {
	keyBytes, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to derive archive key: %w", err)
	}
	var key [32]byte
	copy(key[:], keyBytes)
	return &key, nil
}

// SealArchive seals a secret set into a passphrase-protected blob. The
// payload is line-oriented "name=base64(value)" sorted by name, so equal
// sets produce equal plaintext even though the sealed output differs every
// time due to the random salt and nonce.
func SealArchive(values map[string]string, passphrase string) ([]byte, error) {
	if len(values) == 0 {
		return nil, scouterrors.ErrNoSecretsFound
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var payload strings.Builder
	for _, name := range names {
		payload.WriteString(name)
		payload.WriteByte('=')
		payload.WriteString(base64.StdEncoding.EncodeToString([]byte(values[name])))
		payload.WriteByte('\n')
	}

	salt := make([]byte, archiveSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate archive salt: %w", err)
	}

	key, err := deriveArchiveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	var nonce [archiveNonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate archive nonce: %w", err)
	}

	out := make([]byte, 0, archiveSaltLen+archiveNonceLen+payload.Len()+secretbox.Overhead)
	out = append(out, salt...)
	out = secretbox.Seal(append(out, nonce[:]...), []byte(payload.String()), &nonce, key)
	return out, nil
}

// OpenArchive opens a blob produced by SealArchive and returns the secret
// set keyed by name.
func OpenArchive(data []byte, passphrase string) (map[string]string, error) {
	if len(data) < archiveSaltLen+archiveNonceLen+secretbox.Overhead {
		return nil, scouterrors.ErrInvalidArchive
	}

	salt := data[:archiveSaltLen]
	var nonce [archiveNonceLen]byte
	copy(nonce[:], data[archiveSaltLen:archiveSaltLen+archiveNonceLen])

	key, err := deriveArchiveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	payload, ok := secretbox.Open(nil, data[archiveSaltLen+archiveNonceLen:], &nonce, key)
	if !ok {
		return nil, scouterrors.ErrWrongPassphrase
	}

	values := make(map[string]string)
	for _, line := range strings.Split(string(payload), "\n") {
		if line == "" {
			continue
		}
		name, encoded, found := strings.Cut(line, "=")
		if !found || name == "" {
			return nil, scouterrors.ErrInvalidArchive
		}
		value, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, scouterrors.ErrInvalidArchive
		}
		values[name] = string(value)
	}

	if len(values) == 0 {
		return nil, scouterrors.ErrInvalidArchive
	}
	return values, nil
}
