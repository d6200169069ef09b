package ringdeque

import "fmt"

/*****************************************************************************
 * BULK PUSH
 *****************************************************************************/

// PushTailSlice appends every element of values after the tail, in order.
// It reallocates at most once. A Deque with no storage adopts a copy of
// values as its storage, sized exactly to len(values).
func (d *Deque[T]) PushTailSlice(values []T) {
	n := len(values)
	if n == 0 {
		return
	}
	if len(d.buf) == 0 {
		d.buf = make([]T, n)
		copy(d.buf, values)
		d.head, d.size = 0, n
		return
	}
	d.grow(d.size + n)
	d.copyIn(values)
}

// PushTailDeque appends every element of src after the tail, in order. src
// is not modified, and may be d itself.
func (d *Deque[T]) PushTailDeque(src *Deque[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	// Taken before growing so that src == d still reads the old storage.
	a, b := src.segments(0, n)
	if len(d.buf) == 0 {
		d.buf = src.linearize(n)
		d.head, d.size = 0, n
		return
	}
	d.grow(d.size + n)
	d.copyIn(a)
	d.copyIn(b)
}

// copyIn writes values into the free slots after the tail, splitting the copy
// at the end of the storage if needed. Requires Space() >= len(values).
func (d *Deque[T]) copyIn(values []T) {
	if len(values) == 0 {
		return
	}
	tail := d.physical(d.size)
	n := copy(d.buf[tail:], values)
	copy(d.buf, values[n:])
	d.size += len(values)
}

/*****************************************************************************
 * COPY OUT
 *****************************************************************************/

// CopyInto copies elements, starting from the head, into dest[offset:] until
// either dest or the Deque runs out. It returns the number of elements
// copied, which is 0 when offset is outside dest.
func (d *Deque[T]) CopyInto(dest []T, offset int) int {
	if offset < 0 || offset >= len(dest) || d.Len() == 0 {
		return 0
	}
	a, b := d.segments(0, min(len(dest)-offset, d.size))
	n := copy(dest[offset:], a)
	n += copy(dest[offset+n:], b)
	return n
}

// ToSlice returns a newly allocated slice holding every element in order.
func (d *Deque[T]) ToSlice() []T {
	if d == nil {
		return nil
	}
	return d.linearize(d.size)
}

/*****************************************************************************
 * SLICING
 *****************************************************************************/

func (d *Deque[T]) checkRange(start, end int) error {
	if start < 0 || (d.size > 0 && start >= d.size) || start > end || end > d.size {
		return fmt.Errorf("%w: range [%d:%d] with length %d", ErrIndexOutOfRange, start, end, d.size)
	}
	return nil
}

// Slice returns a new Deque holding a copy of elements [start, end), with
// the same semantics as slicing a Go slice except that memory is never
// shared. The result's capacity is exactly end-start.
//
// It returns ErrIndexOutOfRange if start is negative, start is not a valid
// index of a non-empty Deque, start > end, or end > Len().
func (d *Deque[T]) Slice(start, end int) (*Deque[T], error) {
	if err := d.checkRange(start, end); err != nil {
		return nil, err
	}
	switch n := end - start; n {
	case 0:
		return new(Deque[T]), nil
	case 1:
		return &Deque[T]{buf: []T{d.buf[d.physical(start)]}, size: 1}, nil
	case d.size:
		return &Deque[T]{buf: d.linearize(n), size: n}, nil
	default:
		return &Deque[T]{buf: d.copyRange(start, n), size: n}, nil
	}
}

// SliceToSlice is like Slice but returns the elements as a plain slice.
func (d *Deque[T]) SliceToSlice(start, end int) ([]T, error) {
	if err := d.checkRange(start, end); err != nil {
		return nil, err
	}
	return d.copyRange(start, end-start), nil
}

func (d *Deque[T]) copyRange(start, n int) []T {
	s := make([]T, n)
	a, b := d.segments(start, n)
	k := copy(s, a)
	copy(s[k:], b)
	return s
}
