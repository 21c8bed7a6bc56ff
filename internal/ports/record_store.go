package ports

import "github.com/eroom8/Java-document-sorter/internal/domain"

// RecordSource loads records from a source (e.g., a delimited text file).
type RecordSource interface {
	Load(source string, maxCount int) ([]domain.Record, error)
}

// RecordSink persists records to a destination.
type RecordSink interface {
	Save(sink string, records []domain.Record) error
}

// RecordStore is the full read/write adapter used by the sort use case.
type RecordStore interface {
	RecordSource
	RecordSink
}
