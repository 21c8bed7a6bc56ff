package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/ports"
)

const (
	fieldSeparator = ","
	utf8BOM        = "\ufeff"
	newFileMode    = fs.FileMode(0o644)
)

// Store reads and writes records as "name,count" lines.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ ports.RecordStore = (*Store)(nil)

// Load reads at most maxCount records from source in file order. A source with fewer
// lines yields fewer records.
func (s *Store) Load(source string, maxCount int) ([]domain.Record, error) {
	const op = "textstore.load"

	f, err := os.Open(source)
	if err != nil {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindSourceNotFound,
			Path: source,
			Err:  fmt.Errorf("%w: %w", domain.ErrSourceNotFound, err),
		}
	}
	defer f.Close()

	records := make([]domain.Record, 0, capHint(maxCount))
	r := bufio.NewReader(f)

	line := 0
	for len(records) < maxCount {
		text, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &domain.OpError{
				Op:   op,
				Kind: domain.KindSourceNotFound,
				Path: source,
				Err:  fmt.Errorf("%w: %w", domain.ErrSourceNotFound, err),
			}
		}
		if text == "" && err != nil {
			break
		}

		line++
		text = strings.TrimSuffix(text, "\n")
		if line == 1 {
			text = strings.TrimPrefix(text, utf8BOM)
		}

		rec, perr := ParseLine(text)
		if perr != nil {
			return nil, &domain.OpError{
				Op:   op,
				Kind: domain.KindMalformedRecord,
				Path: source,
				Line: line,
				Err:  perr,
			}
		}
		records = append(records, rec)

		if err != nil {
			break
		}
	}

	return records, nil
}

// ParseLine splits one input line into a Record. Fields past the second are ignored.
func ParseLine(line string) (domain.Record, error) {
	parts := strings.Split(strings.TrimSuffix(line, "\r"), fieldSeparator)
	if len(parts) < 2 {
		return domain.Record{}, fmt.Errorf("%w: expected name,count, got %q", domain.ErrMalformedRecord, line)
	}

	name := strings.TrimSpace(parts[0])
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: count %q is not an integer", domain.ErrMalformedRecord, strings.TrimSpace(parts[1]))
	}

	return domain.NewRecord(name, count), nil
}

// Save writes one "name,count" line per record. The sink is replaced atomically,
// so a failed save leaves any existing file untouched.
func (s *Store) Save(sink string, records []domain.Record) error {
	const op = "textstore.save"

	dir := filepath.Dir(sink)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(sink)+".*.tmp")
	if err != nil {
		return sinkError(op, sink, err)
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, r := range records {
		if _, err := w.WriteString(r.String() + "\n"); err != nil {
			return cleanup(tmp, sinkError(op, tmpPath, err))
		}
	}
	if err := w.Flush(); err != nil {
		return cleanup(tmp, sinkError(op, tmpPath, err))
	}
	if err := tmp.Chmod(sinkMode(sink)); err != nil {
		return cleanup(tmp, sinkError(op, tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return sinkError(op, tmpPath, err)
	}

	if err := os.Rename(tmpPath, sink); err != nil {
		_ = os.Remove(tmpPath)
		return sinkError(op, sink, err)
	}
	return nil
}

// sinkMode keeps the permissions of an existing sink.
func sinkMode(sink string) fs.FileMode {
	if fi, err := os.Stat(sink); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return newFileMode
}

func cleanup(f *os.File, err error) error {
	cerr := f.Close()
	rerr := os.Remove(f.Name())
	return errors.Join(err, cerr, rerr)
}

func sinkError(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindSinkWrite,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrSinkWrite, err),
	}
}

// capHint bounds the up-front allocation for large max values.
func capHint(n int) int {
	const limit = 1024
	if n > limit {
		return limit
	}
	if n < 0 {
		return 0
	}
	return n
}
