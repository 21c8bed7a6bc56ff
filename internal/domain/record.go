package domain

import (
	"strconv"

	"golang.org/x/text/cases"
)

// Record is one (name, count) pair under sort. Fields are fixed at construction.
type Record struct {
	name  string
	count int

	// key is the case-folded name used for ordering.
	key string
}

// NewRecord builds a Record and precomputes its case-folded ordering key.
func NewRecord(name string, count int) Record {
	return Record{
		name:  name,
		count: count,
		key:   cases.Fold().String(name),
	}
}

func (r Record) Name() string { return r.name }

func (r Record) Count() int { return r.count }

// String renders the canonical "name,count" form used in output files.
func (r Record) String() string {
	return r.name + "," + strconv.Itoa(r.count)
}
