package utils

// Contains returns true if elems contains v
func Contains[T comparable](elems []T, v T) bool {
	for _, s := range elems {
		if v == s {
			return true
		}
	}
	return false
}

// Converts any struct to a pointer to that struct
func Ptr[T any](item T) *T {
	return &item
}

// Deref returns the value p points to, or the zero value when p is nil
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
