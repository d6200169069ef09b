package ringdeque

import (
	"fmt"
	"iter"
	"slices"
)

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Iter returns an iterator over the elements from head to tail. Each call
// returns a fresh iterator. Mutating the Deque while iterating gives
// unspecified results.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		a, b := d.segments(0, d.size)
		for _, v := range a {
			if !yield(v) {
				return
			}
		}
		for _, v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		a, b := d.segments(0, d.size)
		for i, v := range a {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range b {
			if !yield(len(a)+i, v) {
				return
			}
		}
	}
}

// ForEach calls f on every element in order, stopping at the first call that
// returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for v := range d.Iter() {
		if !f(v) {
			return
		}
	}
}

/*****************************************************************************
 * COMPARISON AND SEARCH
 *****************************************************************************/

// Equal returns whether both Deques hold the same elements in the same order.
// Capacity and layout are irrelevant. Two nil Deques are equal, but an empty
// Deque and nil are not. This must not be a method, otherwise Deque would be
// constrained to comparable elements.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with eq.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], eq func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.size != d2.size {
		return false
	}

	a1, b1 := d1.segments(0, d1.size)
	a2, b2 := d2.segments(0, d2.size)
	x, y := a1, a2
	for {
		if len(x) == 0 {
			x, b1 = b1, nil
		}
		if len(y) == 0 {
			y, b2 = b2, nil
		}
		if len(x) == 0 || len(y) == 0 {
			return len(x) == len(y)
		}
		n := min(len(x), len(y))
		if !slices.EqualFunc(x[:n], y[:n], eq) {
			return false
		}
		x, y = x[n:], y[n:]
	}
}

// Contains returns whether v is in the Deque. It has the same semantics as
// slices.Contains.
func Contains[T comparable](d *Deque[T], v T) bool {
	return Index(d, v) >= 0
}

// Index returns the index of the first occurrence of v in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], v T) int {
	return d.IndexFunc(func(e T) bool { return e == v })
}

// IndexFunc returns the index of the first element satisfying f or -1 if none
// do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	if d == nil {
		return -1
	}
	a, b := d.segments(0, d.size)
	if i := slices.IndexFunc(a, f); i >= 0 {
		return i
	}
	if i := slices.IndexFunc(b, f); i >= 0 {
		return len(a) + i
	}
	return -1
}

// String formats the elements like a slice, e.g. "[1 2 3]".
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.ToSlice())
}
