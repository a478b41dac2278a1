// Package uniquelist provides an ordered collection that holds at most one
// element per identity, as defined by types.Item.
package uniquelist

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/homebiz/pkg/types"
)

// List is an ordered sequence of items in which no two elements are the same
// entity. Insertion order is kept. The zero value is an empty list ready to
// use. A List is not safe for concurrent use.
type List[T types.Item[T]] struct {
	items []T
}

// New returns a list holding items. It returns ErrDuplicateItem if items
// contains two elements that are the same entity.
func New[T types.Item[T]](items ...T) (*List[T], error) {
	l := &List[T]{}
	if err := l.SetAll(items); err != nil {
		return nil, err
	}
	return l, nil
}

// Contains reports whether some element is the same entity as item.
func (l *List[T]) Contains(item T) bool {
	return l.indexOf(item) >= 0
}

// Add appends item. Returns ErrDuplicateItem if the list already holds the
// same entity.
func (l *List[T]) Add(item T) error {
	if l.Contains(item) {
		return types.ErrDuplicateItem
	}
	l.items = append(l.items, item)
	return nil
}

// SetItem replaces target with edited, keeping target's position. Returns
// ErrItemNotFound if target is absent, and ErrDuplicateItem if edited is the
// same entity as an element other than target.
func (l *List[T]) SetItem(target, edited T) error {
	i := l.indexOf(target)
	if i < 0 {
		return types.ErrItemNotFound
	}
	for j, existing := range l.items {
		if j != i && existing.IsSame(edited) {
			return types.ErrDuplicateItem
		}
	}
	l.items[i] = edited
	return nil
}

// Remove deletes the element that is the same entity as target. Later
// elements move down one position. Returns ErrItemNotFound if target is
// absent.
func (l *List[T]) Remove(target T) error {
	i := l.indexOf(target)
	if i < 0 {
		return types.ErrItemNotFound
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// SetAll replaces the contents of the list with items. If items holds two
// elements that are the same entity it returns ErrDuplicateItem and leaves
// the list unchanged.
func (l *List[T]) SetAll(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if items[i].IsSame(items[j]) {
				return fmt.Errorf("%w: positions %d and %d", types.ErrDuplicateItem, i+1, j+1)
			}
		}
	}
	l.items = slices.Clone(items)
	return nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.items = nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Get returns the element at zero-based position i.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Items returns a snapshot of the elements in order. Later changes to the
// list do not affect the returned slice, and changes to the slice do not
// affect the list.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Filter returns a snapshot of the elements for which keep returns true.
// A nil keep returns every element.
func (l *List[T]) Filter(keep func(T) bool) []T {
	if keep == nil {
		return l.Items()
	}
	var out []T
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *List[T]) indexOf(item T) int {
	return slices.IndexFunc(l.items, func(existing T) bool {
		return existing.IsSame(item)
	})
}
