// Package util holds small generic helpers shared by the scan packages.
package util

// CloneSlice returns a copy of src with length size, or len(src) when size is 0.
// Elements beyond len(src) are zero values.
func CloneSlice[T any](src []T, size int) []T {
	if size == 0 {
		size = len(src)
	}
	clone := make([]T, size)
	copy(clone, src)

	return clone
}
