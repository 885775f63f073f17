package errors

import "errors"

// Guard errors block a run before any secret file is touched.
var (
	// ErrSecretsExist indicates one or more target secret files already exist
	// and the run was not forced.
	ErrSecretsExist = errors.New("secret files already exist")

	// ErrNoSpecs indicates the provisioner was invoked with an empty spec list.
	ErrNoSpecs = errors.New("no secret specs configured")
)

// File errors indicate filesystem issues with the secrets directory or its files.
var (
	// ErrNoSecretsFound indicates no target secret files exist yet.
	ErrNoSecretsFound = errors.New("no secret files found")

	// ErrSecretsDirCreate indicates the secrets directory could not be created.
	ErrSecretsDirCreate = errors.New("failed to create secrets directory")

	// ErrInvalidSecretName indicates a secret name that would resolve outside
	// the secrets directory, such as one containing a path separator.
	ErrInvalidSecretName = errors.New("invalid secret name")
)

// Archive errors indicate failures sealing or opening a secrets archive.
var (
	// ErrInvalidArchive indicates the archive is truncated or malformed.
	ErrInvalidArchive = errors.New("invalid secrets archive")

	// ErrWrongPassphrase indicates the archive could not be opened with the
	// given passphrase.
	ErrWrongPassphrase = errors.New("incorrect passphrase or corrupted archive")
)
