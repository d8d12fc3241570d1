// Package config resolves application settings from command-line flags,
// FLASHCARDS_* environment variables, an optional YAML file and a .env file,
// in that order of precedence, and validates the result.
package config
