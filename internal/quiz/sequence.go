package quiz

import (
	"fmt"
	"slices"
)

// insertAt inserts value so that it ends up at the 1-based position pos.
func insertAt[T any](items []T, pos int, value T) ([]T, error) {
	if pos < 1 || pos > len(items)+1 {
		return items, fmt.Errorf("%w: position %d not in 1..%d", ErrIndexOutOfRange, pos, len(items)+1)
	}
	return slices.Insert(items, pos-1, value), nil
}

// removeAt deletes the element at the 1-based index and returns it.
func removeAt[T any](items []T, index int) ([]T, T, error) {
	var zero T
	if index < 1 || index > len(items) {
		return items, zero, fmt.Errorf("%w: index %d not in 1..%d", ErrIndexOutOfRange, index, len(items))
	}
	removed := items[index-1]
	return slices.Delete(items, index-1, index), removed, nil
}

// ClampPosition limits an insert position to 1..length+1.
func ClampPosition(pos, length int) int {
	if pos < 1 {
		return 1
	}
	if pos > length+1 {
		return length + 1
	}
	return pos
}
