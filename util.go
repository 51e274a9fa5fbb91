package geom

// option is a value that may or may not be present. It backs the
// memoization of lazily-computed evaluation properties.
type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
