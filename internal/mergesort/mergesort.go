// Package mergesort provides a stable, comparator-driven top-down merge sort.
//
// Ranges are half-open [lo, hi). Each merge allocates buffers sized to the two
// halves it merges; nothing is retained between merges.
package mergesort

// Sort sorts items in place. cmp returns a negative number when a sorts before b,
// zero when they rank equal, and a positive number otherwise. Equal elements keep
// their input order.
func Sort[T any](items []T, cmp func(a, b T) int) {
	// An infallible comparator never produces an error.
	_ = SortFunc(items, func(a, b T) (int, error) {
		return cmp(a, b), nil
	})
}

// SortFunc is Sort for comparators that can fail. The first comparator error
// stops the sort and is returned as is. On error items is still a permutation
// of its input, in unspecified order.
func SortFunc[T any](items []T, cmp func(a, b T) (int, error)) error {
	return sortRange(items, 0, len(items), cmp)
}

func sortRange[T any](items []T, lo, hi int, cmp func(a, b T) (int, error)) error {
	if hi-lo <= 1 {
		return nil
	}

	mid := lo + (hi-lo)/2
	if err := sortRange(items, lo, mid, cmp); err != nil {
		return err
	}
	if err := sortRange(items, mid, hi, cmp); err != nil {
		return err
	}
	return merge(items, lo, mid, hi, cmp)
}

// merge combines the sorted ranges [lo, mid) and [mid, hi).
func merge[T any](items []T, lo, mid, hi int, cmp func(a, b T) (int, error)) error {
	left := make([]T, mid-lo)
	right := make([]T, hi-mid)
	copy(left, items[lo:mid])
	copy(right, items[mid:hi])

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		c, err := cmp(left[i], right[j])
		if err != nil {
			// Put the unmerged tails back so no element is lost.
			k += copy(items[k:], left[i:])
			copy(items[k:], right[j:])
			return err
		}

		// Ties take from the left half.
		if c <= 0 {
			items[k] = left[i]
			i++
		} else {
			items[k] = right[j]
			j++
		}
		k++
	}

	k += copy(items[k:], left[i:])
	copy(items[k:], right[j:])
	return nil
}
