package types

import "errors"

// Item is the capability an entity must provide to be held in a unique list.
// IsSame reports whether two values describe the same real-world entity. It is
// weaker than full equality: two values may differ in mutable fields and still
// be the same entity. Implementations must be reflexive and symmetric.
type Item[T any] interface {
	IsSame(other T) bool
}

// Collection errors.
var (
	ErrDuplicateItem = errors.New("operation would result in duplicate items")
	ErrItemNotFound  = errors.New("item not found")
)
