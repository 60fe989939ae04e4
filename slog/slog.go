// Package slog provides log/slog decorators for the lyricbook interfaces.
// Each decorator delegates to the wrapped implementation and emits one
// record per call.
package slog
