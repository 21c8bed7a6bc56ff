package usecase

import (
	"errors"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/ports"
)

// memStore is an in-memory RecordStore keyed by path.
type memStore struct {
	files     map[string][]domain.Record
	loadCalls int
	saveCalls int
	saveErr   error
}

func newMemStore(path string, records ...domain.Record) *memStore {
	return &memStore{files: map[string][]domain.Record{path: records}}
}

func (m *memStore) Load(source string, maxCount int) ([]domain.Record, error) {
	m.loadCalls++
	recs, ok := m.files[source]
	if !ok {
		return nil, &domain.OpError{
			Op:   "memstore.load",
			Kind: domain.KindSourceNotFound,
			Path: source,
			Err:  domain.ErrSourceNotFound,
		}
	}
	if len(recs) > maxCount {
		recs = recs[:maxCount]
	}
	out := make([]domain.Record, len(recs))
	copy(out, recs)
	return out, nil
}

func (m *memStore) Save(sink string, records []domain.Record) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	out := make([]domain.Record, len(records))
	copy(out, records)
	m.files[sink] = out
	return nil
}

type fakeReportStore struct {
	saved []domain.SortReport
	err   error
}

func (f *fakeReportStore) SaveReport(r domain.SortReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, r)
	return "report-1", nil
}

var errDiskFull = errors.New("disk full")

var (
	_ ports.RecordStore = (*memStore)(nil)
	_ ports.ReportStore = (*fakeReportStore)(nil)
)

func recs(pairs ...any) []domain.Record {
	out := make([]domain.Record, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.NewRecord(pairs[i].(string), pairs[i+1].(int)))
	}
	return out
}

func render(rs []domain.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
