package lox

import "fmt"

// MapErr converts every item and stops at the first failure, reporting the
// index of the offending item.
func MapErr[T, R any](collection []T, convert func(item T) (R, error)) ([]R, error) {
	result := make([]R, 0, len(collection))

	for i, item := range collection {
		r, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		result = append(result, r)
	}

	return result, nil
}

// Map takes converters without the index argument lo.Map expects. A nil
// collection maps to an empty, non-nil slice so it encodes as [].
func Map[T, R any](collection []T, convert func(item T) R) []R {
	result := make([]R, 0, len(collection))

	for _, item := range collection {
		result = append(result, convert(item))
	}

	return result
}
