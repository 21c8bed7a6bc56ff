package usecase

import (
	"context"

	"github.com/eroom8/Java-document-sorter/internal/ports"
)

type CheckInput struct {
	source ports.RecordSource
}

func NewCheckInput(source ports.RecordSource) *CheckInput {
	return &CheckInput{source: source}
}

// Execute parses up to count records from input without writing anything and
// returns how many were found.
func (uc *CheckInput) Execute(ctx context.Context, input string, count int, exact bool) (int, error) {
	if err := validateCount("usecase.check", count); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	records, err := uc.source.Load(input, count)
	if err != nil {
		return 0, err
	}
	if exact && len(records) < count {
		return len(records), shortSource("usecase.check", input, count, len(records))
	}
	return len(records), nil
}
