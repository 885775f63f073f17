package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenBytes is the entropy per generated secret. 32 bytes gives 256 bits,
// the same size the platform uses for symmetric keys elsewhere.
const TokenBytes = 32

// GenerateToken returns a fresh secret value: TokenBytes of CSPRNG output
// encoded as unpadded URL-safe base64. The result is printable and safe to
// embed in connection strings and Docker secret mounts without escaping.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
