package catalog

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lyricbook"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// Summary counts outcomes by status.
type Summary struct {
	Persisted int
	Skipped   int
	NotFound  int
	Failed    int
	Bytes     int
}

// Summarize counts outcomes by status and totals the bytes written.
func Summarize(outcomes []lyricbook.Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case lyricbook.StatusPersisted:
			s.Persisted++
			s.Bytes += o.Bytes
		case lyricbook.StatusSkipped:
			s.Skipped++
		case lyricbook.StatusNotFound:
			s.NotFound++
		case lyricbook.StatusFailed:
			s.Failed++
		}
	}
	return s
}
