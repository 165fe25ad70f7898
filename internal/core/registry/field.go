package registry

// Field is one sparse default value. It distinguishes three states:
//
//   - unset: the analysis does not use this filter at all
//   - null: the analysis uses the filter and its default is the
//     aggregate / all-inclusive value
//   - set: the analysis uses the filter with a concrete default
//
// The zero value is unset.
type Field[T any] struct {
	set  bool
	null bool
	val  T
}

// Value returns a Field holding a concrete default.
func Value[T any](v T) Field[T] { return Field[T]{set: true, val: v} }

// Null returns a Field marking the filter as used with the aggregate default.
func Null[T any]() Field[T] { return Field[T]{set: true, null: true} }

// IsSet reports whether the analysis uses this filter (value or null).
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the default is the explicit aggregate value.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the concrete default and whether one is present.
func (f Field[T]) Get() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.val, true
}
