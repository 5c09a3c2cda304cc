package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Rotate returns a new slice with the first n items moved to the back.
func Rotate[T any](slice []T, n int) []T {
	if len(slice) == 0 {
		return slice
	}
	n = ((n % len(slice)) + len(slice)) % len(slice)
	out := make([]T, 0, len(slice))
	out = append(out, slice[n:]...)
	return append(out, slice[:n]...)
}
