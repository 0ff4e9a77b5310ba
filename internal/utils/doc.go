// Package utils provides small helpers shared by the editdecode packages:
// rune-safe truncation for error messages and diagnostics, JSON rendering
// that never fails, and a lap [Stopwatch] for timing decode attempts.
package utils
