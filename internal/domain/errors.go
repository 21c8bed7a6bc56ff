package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrSourceNotFound  = errors.New("source not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrSinkWrite       = errors.New("sink write failed")
	ErrShortSource     = errors.New("short source")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrNotFound        = errors.New("not found")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindSourceNotFound  ErrorKind = "source_not_found"
	KindMalformedRecord ErrorKind = "malformed_record"
	KindInvalidMode     ErrorKind = "invalid_mode"
	KindSinkWrite       ErrorKind = "sink_write"
	KindShortSource     ErrorKind = "short_source"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindNotFound        ErrorKind = "not_found"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line int    // Optional: 1-based line number within Path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s", e.Path)
		if e.Line > 0 {
			base += fmt.Sprintf(", line=%d", e.Line)
		}
		base += ")"
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
