// Package slogobs provides an observability.Provider backed by log/slog.
//
// At INFO a decoder wired with [New] reports only finished and failed
// decodes. DEBUG adds every sanitizer step that rewrote the input and every
// failed attempt. [LevelTrace] adds span transitions and metric updates.
// Format and level come from [WithFormat] and [WithLevel], or from the
// EDITDECODE_LOG_FORMAT and EDITDECODE_LOG_LEVEL environment variables.
package slogobs
