// Package logging constructs the slog loggers used across animora.
//
// The CLI keeps stdout for command output, so loggers write to the log
// file under the configured log directory. Console format emits
// human-readable key=value lines; json format emits one JSON object per
// record with normalized ts/level/msg keys.
package logging
