package mock

import (
	"context"

	"github.com/fwojciec/lyricbook"
)

var _ lyricbook.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of lyricbook.RecordService.
type RecordService struct {
	CreateRecordFn func(ctx context.Context, record *lyricbook.Record) error
	FindRecordsFn  func(ctx context.Context, filter lyricbook.RecordFilter) ([]*lyricbook.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, record *lyricbook.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecords(ctx context.Context, filter lyricbook.RecordFilter) ([]*lyricbook.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
