package observe

import (
	"fmt"
	"github.com/pkg/errors"
	"sort"
)

// List is a slice that notifies its listeners after every structural
// mutation.  Clear, Reverse and Sort change the contents or order without
// notifying.
type List[T comparable] struct {
	Observable[*List[T]]
	items []T
}

// NewList returns a List holding items.  The slice is used as is, not copied.
func NewList[T comparable](items ...T) *List[T] {
	l := &List[T]{items: items}
	l.subject = l
	return l
}

// SetItems replaces the whole sequence then notifies
func (l *List[T]) SetItems(items []T) error {
	l.items = items
	return l.Notify()
}

// Items returns a copy of the current sequence
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// All calls yield for each item in order until yield returns false
func (l *List[T]) All(yield func(i int, item T) bool) {
	for i, item := range l.items {
		if !yield(i, item) {
			return
		}
	}
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i.  Negative indices count back from the end.
func (l *List[T]) At(i int) (T, error) {

	idx, ok := l.resolve(i)

	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", i, len(l.items))
	}

	return l.items[idx], nil
}

// Set writes value at index i then notifies
func (l *List[T]) Set(i int, value T) error {

	idx, ok := l.resolve(i)

	if !ok {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", i, len(l.items))
	}

	l.items[idx] = value
	return l.Notify()
}

// Append adds item to the end of the list then notifies
func (l *List[T]) Append(item T) error {
	l.items = append(l.items, item)
	return l.Notify()
}

// Extend appends all items then notifies once
func (l *List[T]) Extend(items ...T) error {
	l.items = append(l.items, items...)
	return l.Notify()
}

// Insert places item before index i then notifies.  Indices past either end
// are clamped, so Insert never fails on the index.
func (l *List[T]) Insert(i int, item T) error {

	n := len(l.items)

	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}

	if i > n {
		i = n
	}

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item

	return l.Notify()
}

// Remove deletes the first occurrence of item then notifies.  When item is
// absent ErrElementNotFound is returned and listeners are not called.
func (l *List[T]) Remove(item T) error {

	idx := l.find(item, 0, len(l.items))

	if idx < 0 {
		return errors.Wrapf(ErrElementNotFound, "%v", item)
	}

	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return l.Notify()
}

// Pop removes and returns the last item then notifies
func (l *List[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the item at index i then notifies.  The removed
// item is returned even when a listener fails.
func (l *List[T]) PopAt(i int) (T, error) {

	idx, ok := l.resolve(i)

	if !ok {
		var zero T

		if len(l.items) == 0 {
			return zero, errors.Wrap(ErrIndexOutOfRange, "pop from empty list")
		}

		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", i, len(l.items))
	}

	item := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)

	return item, l.Notify()
}

// Clear empties the list.  Listeners are not notified.
func (l *List[T]) Clear() {
	l.items = []T{}
}

// Count returns the number of occurrences of item
func (l *List[T]) Count(item T) int {

	n := 0

	for _, v := range l.items {
		if v == item {
			n++
		}
	}

	return n
}

// Index returns the position of the first occurrence of item
func (l *List[T]) Index(item T) (int, error) {
	return l.IndexIn(item, 0, len(l.items))
}

// IndexIn returns the position of the first occurrence of item within
// items[start:stop].  Bounds follow slice semantics, negative values count
// back from the end and values past either end are clamped.
func (l *List[T]) IndexIn(item T, start, stop int) (int, error) {

	idx := l.find(item, l.clamp(start), l.clamp(stop))

	if idx < 0 {
		return -1, errors.Wrapf(ErrElementNotFound, "%v", item)
	}

	return idx, nil
}

// Reverse reverses the order of the items in place without notifying
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
}

// Sort orders the items in place using less, descending when reverse is set.
// The sort is stable.  Listeners are not notified.
func (l *List[T]) Sort(less func(a, b T) bool, reverse bool) {
	sort.SliceStable(l.items, func(i, j int) bool {
		if reverse {
			return less(l.items[j], l.items[i])
		}
		return less(l.items[i], l.items[j])
	})
}

// String formats the items the same way as a slice
func (l *List[T]) String() string {
	return fmt.Sprint(l.items)
}

// resolve converts a possibly negative index into a slice position
func (l *List[T]) resolve(i int) (int, bool) {

	if i < 0 {
		i += len(l.items)
	}

	if i < 0 || i >= len(l.items) {
		return 0, false
	}

	return i, true
}

// clamp applies slice bound semantics to i
func (l *List[T]) clamp(i int) int {

	n := len(l.items)

	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}

	if i > n {
		return n
	}

	return i
}

// find returns the first position of item in items[start:stop] or -1
func (l *List[T]) find(item T, start, stop int) int {

	for i := start; i < stop; i++ {
		if l.items[i] == item {
			return i
		}
	}

	return -1
}
