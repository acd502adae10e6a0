package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// SumBy adds up f(e) over all elements.
func SumBy[S ~[]E, E any](s S, f func(E) uint64) uint64 {
	var total uint64
	for _, e := range s {
		total += f(e)
	}

	return total
}

// MaxBy returns the largest f(e) over all elements, or 0 if the slice is empty.
func MaxBy[S ~[]E, E any](s S, f func(E) uint64) uint64 {
	var m uint64
	for _, e := range s {
		m = max(m, f(e))
	}

	return m
}

// AllBy returns true if pred holds for every element. It is true for an empty slice.
func AllBy[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, e := range s {
		if !pred(e) {
			return false
		}
	}

	return true
}
