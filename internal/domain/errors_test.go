package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "textstore.load",
		Kind: KindSourceNotFound,
		Path: "input.txt",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(fmt.Errorf("outer: %w", err), &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindSourceNotFound {
		t.Fatalf("expected kind %s", KindSourceNotFound)
	}
}

func TestOpErrorMessage(t *testing.T) {
	cases := []struct {
		err  *OpError
		want string
	}{
		{
			err:  &OpError{Op: "op", Kind: KindSinkWrite},
			want: "op: sink_write",
		},
		{
			err:  &OpError{Op: "op", Kind: KindSourceNotFound, Path: "in.txt", Err: ErrSourceNotFound},
			want: "op: source_not_found (path=in.txt): source not found",
		},
		{
			err:  &OpError{Op: "op", Kind: KindMalformedRecord, Path: "in.txt", Line: 3, Err: ErrMalformedRecord},
			want: "op: malformed_record (path=in.txt, line=3): malformed record",
		},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("expected <nil>")
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &OpError{Kind: KindInvalidConfig, Err: ErrInvalidConfig})

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match wrapped OpError")
	}
	if IsKind(err, KindSinkWrite) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind to reject plain errors")
	}
}
