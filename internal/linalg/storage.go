package linalg

import (
	"fmt"
	"sync"
)

// span is a half-open [lo, hi) range of flat storage offsets.
type span struct {
	lo, hi int
}

func (s span) overlaps(o span) bool {
	return s.lo < o.hi && o.lo < s.hi
}

// borrow records one live view over a storage region. Any number of shared
// borrows may overlap; an exclusive borrow conflicts with every overlapping
// borrow, shared or exclusive.
type borrow struct {
	extent    span
	exclusive bool
	released  bool
}

// storage is the backing buffer shared by an owning container and the views
// derived from it. The borrow ledger reproduces the exclusivity discipline
// the type system cannot express: it is checked on view construction and on
// every in-place mutation through the owner, and fails fast with
// ErrAliasingViolation. Ledger operations are safe for concurrent use.
type storage[T Element] struct {
	mu      sync.Mutex
	data    []T
	borrows []*borrow
}

func newStorage[T Element](n int) *storage[T] {
	return &storage[T]{data: make([]T, n)}
}

// storageFrom copies values into fresh backing storage.
func storageFrom[T Element](values []T) *storage[T] {
	st := newStorage[T](len(values))
	copy(st.data, values)
	return st
}

// adoptStorage takes ownership of values without copying. The caller must
// not retain the slice.
func adoptStorage[T Element](values []T) *storage[T] {
	return &storage[T]{data: values}
}

// acquire registers a new borrow over extent, or reports the conflict.
func (st *storage[T]) acquire(extent span, exclusive bool) (*borrow, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, b := range st.borrows {
		if b.released || !b.extent.overlaps(extent) {
			continue
		}
		if exclusive || b.exclusive {
			return nil, fmt.Errorf("linalg: span [%d,%d) conflicts with live borrow [%d,%d): %w",
				extent.lo, extent.hi, b.extent.lo, b.extent.hi, ErrAliasingViolation)
		}
	}

	b := &borrow{extent: extent, exclusive: exclusive}
	st.borrows = append(st.borrows, b)
	return b, nil
}

// release ends a borrow. Releasing twice is a no-op.
func (st *storage[T]) release(b *borrow) {
	if b == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if b.released {
		return
	}
	b.released = true

	live := st.borrows[:0]
	for _, other := range st.borrows {
		if !other.released {
			live = append(live, other)
		}
	}
	st.borrows = live
}

// exclusiveCheck verifies that an in-place mutation through the owner over
// extent would not overlap any live borrow.
func (st *storage[T]) exclusiveCheck(extent span) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, b := range st.borrows {
		if !b.released && b.extent.overlaps(extent) {
			return fmt.Errorf("linalg: mutation of span [%d,%d) overlaps live borrow [%d,%d): %w",
				extent.lo, extent.hi, b.extent.lo, b.extent.hi, ErrAliasingViolation)
		}
	}
	return nil
}

// idle reports whether no borrow is live. Structural resizes require an
// idle ledger: a reallocation would invalidate every view.
func (st *storage[T]) idle() bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, b := range st.borrows {
		if !b.released {
			return false
		}
	}
	return true
}
