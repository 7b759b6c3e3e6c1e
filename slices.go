package automaton

// grow Pads s with zero values up to size. It never shrinks.
func grow[T any](s []T, size int) []T {
	if len(s) >= size {
		return s
	}
	return append(s, make([]T, size-len(s))...)
}
