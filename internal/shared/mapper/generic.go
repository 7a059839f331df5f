// Package mapper holds the generic slice conversions the DTO layers share.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil so
// templates and JSON see an empty list rather than null.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSlicePtr is MapSlice for pointer slices, skipping nil inputs.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}
