package ports

import "github.com/eroom8/Java-document-sorter/internal/domain"

// ReportStore persists run reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.SortReport) (id string, err error)
}
