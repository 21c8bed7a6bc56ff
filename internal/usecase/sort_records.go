package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/mergesort"
	"github.com/eroom8/Java-document-sorter/internal/ports"
)

type SortRecords struct {
	store   ports.RecordStore
	reports ports.ReportStore
	log     *slog.Logger
	now     func() time.Time
	newID   func() string
}

type SortOption func(*SortRecords)

// WithReportStore saves a report after every successful run. nil disables reports.
func WithReportStore(rs ports.ReportStore) SortOption {
	return func(uc *SortRecords) { uc.reports = rs }
}

func WithLogger(l *slog.Logger) SortOption {
	return func(uc *SortRecords) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SortOption {
	return func(uc *SortRecords) { uc.now = now }
}

func NewSortRecords(store ports.RecordStore, opts ...SortOption) *SortRecords {
	uc := &SortRecords{
		store: store,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads req.Count records from req.Input, sorts them by the ordering
// req.Mode selects and writes them to req.Output. The mode is resolved before any
// file is touched. The returned id is the saved report id, empty when no report
// was written.
func (uc *SortRecords) Execute(ctx context.Context, req domain.SortRequest) (domain.SortReport, string, error) {
	report := domain.SortReport{
		RunID:     uc.newID(),
		Input:     req.Input,
		Output:    req.Output,
		Mode:      req.Mode,
		Requested: req.Count,
		StartedAt: uc.now(),
	}

	ordering, err := domain.ParseMode(req.Mode)
	if err != nil {
		return report, "", err
	}
	report.Ordering = ordering.String()

	if err := validateCount("usecase.sort", req.Count); err != nil {
		return report, "", err
	}
	if err := ctx.Err(); err != nil {
		return report, "", err
	}

	records, err := uc.store.Load(req.Input, req.Count)
	if err != nil {
		return report, "", err
	}
	report.Loaded = len(records)
	report.Truncated = len(records) < req.Count
	uc.log.Debug("sort.loaded", "input", req.Input, "requested", req.Count, "loaded", len(records))

	if report.Truncated {
		if req.Exact {
			return report, "", shortSource("usecase.sort", req.Input, req.Count, len(records))
		}
		uc.log.Info("sort.truncated", "input", req.Input, "requested", req.Count, "loaded", len(records))
	}
	if err := ctx.Err(); err != nil {
		return report, "", err
	}

	mergesort.Sort(records, ordering.Compare)
	uc.log.Debug("sort.sorted", "ordering", report.Ordering, "records", len(records))

	if err := ctx.Err(); err != nil {
		return report, "", err
	}
	if err := uc.store.Save(req.Output, records); err != nil {
		return report, "", err
	}
	report.EndedAt = uc.now()
	uc.log.Info("sort.saved",
		"run_id", report.RunID,
		"output", req.Output,
		"mode", req.Mode,
		"records", len(records),
		"duration", report.EndedAt.Sub(report.StartedAt),
	)

	if uc.reports == nil {
		return report, "", nil
	}

	id, err := uc.reports.SaveReport(report)
	if err != nil {
		// Output is already written; report failures are only logged.
		uc.log.Warn("sort.report_failed", "run_id", report.RunID, "err", err)
		return report, "", nil
	}
	return report, id, nil
}

func validateCount(op string, n int) error {
	if n > 0 {
		return nil
	}
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("count must be positive, got %d: %w", n, domain.ErrInvalidConfig),
	}
}

func shortSource(op, path string, want, got int) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindShortSource,
		Path: path,
		Err:  fmt.Errorf("%w: want %d record(s), found %d", domain.ErrShortSource, want, got),
	}
}
