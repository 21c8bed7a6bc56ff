package domain

import (
	"cmp"
	"fmt"
)

// Ordering is a total order over Records. The set of orderings is closed.
type Ordering int

const (
	ByName Ordering = iota + 1
	ByCount
	ByNameThenCount
	ByCountThenName
)

// Mode keys accepted on the command line and in recsort.yaml.
const (
	ModeName          = "name"
	ModeCount         = "count"
	ModeNameThenCount = "nameThenCount"
	ModeCountThenName = "countThenName"
)

// ModeBinding pairs a mode key with the ordering it resolves to.
type ModeBinding struct {
	Key      string
	Ordering Ordering
}

// "name" resolves to ByNameThenCount, not ByName.
var modeBindings = []ModeBinding{
	{Key: ModeName, Ordering: ByNameThenCount},
	{Key: ModeCount, Ordering: ByCount},
	{Key: ModeNameThenCount, Ordering: ByNameThenCount},
	{Key: ModeCountThenName, Ordering: ByCountThenName},
}

// Modes returns every accepted mode key in a fixed order.
func Modes() []ModeBinding {
	out := make([]ModeBinding, len(modeBindings))
	copy(out, modeBindings)
	return out
}

// ParseMode resolves a mode key. Unknown keys fail with KindInvalidMode.
func ParseMode(key string) (Ordering, error) {
	for _, b := range modeBindings {
		if b.Key == key {
			return b.Ordering, nil
		}
	}
	return 0, &OpError{
		Op:   "domain.parse_mode",
		Kind: KindInvalidMode,
		Err:  fmt.Errorf("%w: %q", ErrInvalidMode, key),
	}
}

// Compare returns a negative number when a sorts before b, zero when they rank
// equal, and a positive number otherwise.
func (o Ordering) Compare(a, b Record) int {
	switch o {
	case ByName:
		return compareName(a, b)
	case ByCount:
		return cmp.Compare(a.count, b.count)
	case ByNameThenCount:
		if c := compareName(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.count, b.count)
	case ByCountThenName:
		if c := cmp.Compare(a.count, b.count); c != 0 {
			return c
		}
		return compareName(a, b)
	default:
		panic(fmt.Sprintf("domain: unknown ordering %d", int(o)))
	}
}

func (o Ordering) String() string {
	switch o {
	case ByName:
		return "ByName"
	case ByCount:
		return "ByCount"
	case ByNameThenCount:
		return "ByNameThenCount"
	case ByCountThenName:
		return "ByCountThenName"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

func compareName(a, b Record) int {
	return cmp.Compare(a.key, b.key)
}
