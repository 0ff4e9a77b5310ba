// Package config loads editdecode settings from an optional .env file and
// EDITDECODE_* environment variables.
package config
