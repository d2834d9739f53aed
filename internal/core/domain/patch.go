package domain

// Patch is one field of a partial update. An unset Patch leaves the stored value
// untouched; a set Patch with a nil Value clears a nullable column.
type Patch[T any] struct {
	Set   bool
	Value *T
}

func SetTo[T any](value T) Patch[T] {
	return Patch[T]{Set: true, Value: &value}
}

func Cleared[T any]() Patch[T] {
	return Patch[T]{Set: true}
}
