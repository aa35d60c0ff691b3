// package algorithms provides generified map/filter/sort functions.
package algorithms

import "sort"

// Map applies the function f to each element of the slice and returns a new slice containing the results.
func Map[T, R any](s []T, f func(T) R) []R {
	r := make([]R, 0, len(s))
	for _, v := range s {
		r = append(r, f(v))
	}
	return r
}

// FilterMap applies f to each element of the slice and returns a new
// slice containing the results for which f reported ok.
func FilterMap[T, R any](s []T, f func(T) (R, bool)) []R {
	r := make([]R, 0, len(s))
	for _, v := range s {
		if out, ok := f(v); ok {
			r = append(r, out)
		}
	}
	return r
}

// Filter returns a new slice containing all elements of the slice that satisfy the predicate function.
func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

// SortBy sorts the slice in place by the key function.
func SortBy[T any, K float64 | int | string](s []T, key func(T) K) {
	sort.Slice(s, func(i, j int) bool {
		return key(s[i]) < key(s[j])
	})
}
