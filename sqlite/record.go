package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/lyricbook"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lyricbook.RecordService = (*RecordService)(nil)

// RecordService implements lyricbook.RecordService using SQLite.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// CreateRecord stores a record keyed by its file path. Recording the same
// file again refreshes the entry and keeps its original ID.
func (s *RecordService) CreateRecord(ctx context.Context, record *lyricbook.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.FetchedAt = s.now().UTC().Truncate(time.Second)

	return s.db.QueryRowContext(ctx, `
		INSERT INTO records (id, title, artist, source_url, file_path, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			source_url = excluded.source_url,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, record.ID, record.Title, record.Artist, record.SourceURL, record.FilePath,
		record.ContentHash, record.FetchedAt.Format(time.RFC3339)).Scan(&record.ID)
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter lyricbook.RecordFilter) ([]*lyricbook.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, artist, source_url, file_path, content_hash, fetched_at FROM records WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}
	if filter.Artist != nil {
		query.WriteString(" AND artist = ?")
		args = append(args, *filter.Artist)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*lyricbook.Record
	for rows.Next() {
		var r lyricbook.Record
		var fetchedAt string

		if err := rows.Scan(&r.ID, &r.Title, &r.Artist, &r.SourceURL, &r.FilePath,
			&r.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		r.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &r)
	}

	return records, rows.Err()
}
