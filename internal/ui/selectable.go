package ui

import "slices"

// SelectableList is an ordered collection with an optional cursor.
// The cursor is -1 when nothing is selected and otherwise always indexes items.
type SelectableList[T any] struct {
	items  []T
	cursor int
}

// NewSelectableList creates a list over items with the first item selected.
func NewSelectableList[T any](items []T) *SelectableList[T] {
	l := &SelectableList[T]{cursor: -1}
	l.ReplaceItems(items)
	return l
}

// Items returns the underlying slice. Callers must not modify it.
func (l *SelectableList[T]) Items() []T { return l.items }

// Len returns the number of items.
func (l *SelectableList[T]) Len() int { return len(l.items) }

// Selected returns the cursor position and whether one is set.
func (l *SelectableList[T]) Selected() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return -1, false
	}
	return l.cursor, true
}

// SelectedItem returns the item under the cursor.
func (l *SelectableList[T]) SelectedItem() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// SelectFirst moves the cursor to the first item.
func (l *SelectableList[T]) SelectFirst() {
	if len(l.items) == 0 {
		return
	}
	l.cursor = 0
}

// SelectLast moves the cursor to the last item.
func (l *SelectableList[T]) SelectLast() {
	if len(l.items) == 0 {
		return
	}
	l.cursor = len(l.items) - 1
}

// SelectNext moves the cursor down one row, stopping at the last item.
// With no cursor it selects the first item.
func (l *SelectableList[T]) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	l.cursor = min(l.cursor+1, len(l.items)-1)
}

// SelectPrevious moves the cursor up one row, stopping at the first item.
// With no cursor it selects the last item.
func (l *SelectableList[T]) SelectPrevious() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = len(l.items) - 1
		return
	}
	l.cursor = max(l.cursor-1, 0)
}

// ClearSelection removes the cursor.
func (l *SelectableList[T]) ClearSelection() {
	l.cursor = -1
}

// ReplaceItems swaps the contents and resets the cursor to the first item,
// or to none when items is empty.
func (l *SelectableList[T]) ReplaceItems(items []T) {
	l.items = slices.Clone(items)
	if len(l.items) == 0 {
		l.cursor = -1
		return
	}
	l.cursor = 0
}

// Append adds item at the end. The cursor does not move.
func (l *SelectableList[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Set replaces the item at i. Out-of-range indexes are ignored.
func (l *SelectableList[T]) Set(i int, item T) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items[i] = item
}

// RemoveAt deletes the item at i and keeps the cursor in range.
func (l *SelectableList[T]) RemoveAt(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items = slices.Delete(l.items, i, i+1)
	switch {
	case len(l.items) == 0:
		l.cursor = -1
	case l.cursor > i, l.cursor >= len(l.items):
		l.cursor--
	}
}

// IndexFunc returns the index of the first item satisfying fn, or -1.
func (l *SelectableList[T]) IndexFunc(fn func(T) bool) int {
	return slices.IndexFunc(l.items, fn)
}
