package typecast

// ToPtr converts an input value of any type to a pointer.
func ToPtr[T any](v T) *T {
	return &v
}

// FromPtr returns the value the pointer refers to, or the zero value for nil.
func FromPtr[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}

	return *v
}
