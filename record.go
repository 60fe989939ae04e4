package lyricbook

import (
	"context"
	"time"
)

// Record is a ledger entry for a persisted lyric file.
type Record struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	SourceURL   string    `json:"sourceUrl"`
	FilePath    string    `json:"filePath"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.FilePath == "" {
		return Errorf(EINVALID, "record file path required")
	}
	return nil
}

// RecordService represents a service for the download ledger.
type RecordService interface {
	// CreateRecord stores a record. A record with the same file path
	// is replaced.
	CreateRecord(ctx context.Context, record *Record) error

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
