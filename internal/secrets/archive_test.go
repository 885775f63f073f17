package secrets

import (
	"testing"

	scouterrors "github.com/fahim-mle/career-scout-platform/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	values := map[string]string{
		"db_password":       "s3cr3t-value",
		"grafana_password":  "another-value",
		"linkedin_password": "with=equals and spaces\nand newlines",
	}

	sealed, err := SealArchive(values, "correct horse")
	require.NoError(t, err)

	opened, err := OpenArchive(sealed, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, values, opened)
}

func TestArchiveSealIsNonDeterministic(t *testing.T) {
	values := map[string]string{"db_password": "same"}

	first, err := SealArchive(values, "pass")
	require.NoError(t, err)
	second, err := SealArchive(values, "pass")
	require.NoError(t, err)

	// Random salt and nonce make equal inputs seal differently.
	assert.NotEqual(t, first, second)
}

func TestArchiveWrongPassphrase(t *testing.T) {
	sealed, err := SealArchive(map[string]string{"db_password": "v"}, "right")
	require.NoError(t, err)

	_, err = OpenArchive(sealed, "wrong")
	assert.ErrorIs(t, err, scouterrors.ErrWrongPassphrase)
}

func TestArchiveTamperedCiphertext(t *testing.T) {
	sealed, err := SealArchive(map[string]string{"db_password": "v"}, "pass")
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = OpenArchive(sealed, "pass")
	assert.ErrorIs(t, err, scouterrors.ErrWrongPassphrase)
}

func TestArchiveTruncated(t *testing.T) {
	_, err := OpenArchive([]byte("too short"), "pass")
	assert.ErrorIs(t, err, scouterrors.ErrInvalidArchive)
}

func TestArchiveEmptySet(t *testing.T) {
	_, err := SealArchive(nil, "pass")
	assert.ErrorIs(t, err, scouterrors.ErrNoSecretsFound)
}
