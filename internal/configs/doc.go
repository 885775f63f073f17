// Package configs holds project-level settings for the Scout CLI.
//
// Settings are resolved once per invocation by InitProjectSettings, which
// locates the project root by walking up from the working directory and
// applies overrides from an optional scout.yaml at the root.
//
// # Project Root Discovery
//
// A directory is the project root when it contains one of:
//
//   - scout.yaml
//   - docker-compose.yml / docker-compose.yaml / compose.yaml
//
// When nothing matches, the working directory is used so the tool still
// works in a bare checkout.
//
// # scout.yaml
//
//	project:
//	  name: career-scout
//	secrets:
//	  dir: secrets
//	  extra:
//	    - smtp_password
package configs
