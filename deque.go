// Package ringdeque provides double-ended queues of unboxed values stored in
// a single contiguous ring buffer.
package ringdeque

import "fmt"

// Deque is a growable double-ended queue backed by one ring buffer. Values
// are stored inline, so a Deque[byte] or Deque[float64] holds its elements
// without any per-element allocation.
//
// The zero value is an empty Deque with no storage and is ready to use:
//
//	var d Deque[int32]
//	d.PushTail(7)
//
// Storage grows by half its capacity whenever it overflows, and growth always
// re-linearizes the elements so that the head lands at physical index 0. It
// never shrinks on its own; call TrimToSize to release unused capacity.
//
// A Deque is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally.
type Deque[T any] struct {
	// Logical element i lives at buf[(head+i) % len(buf)].
	// Invariants:
	// - 0 <= size <= len(buf).
	// - If len(buf) == 0, head == 0; otherwise head < len(buf).
	buf  []T
	head int
	size int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque with no storage allocated. It is
// equivalent to new(Deque[T]).
func MakeDeque[T any]() *Deque[T] {
	return new(Deque[T])
}

// MakeDequeWithCapacity returns an empty Deque whose storage holds exactly
// capacity elements. Returns an error if capacity is negative.
func MakeDequeWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	if capacity == 0 {
		return new(Deque[T]), nil
	}
	return &Deque[T]{buf: make([]T, capacity)}, nil
}

// CopySliceToDeque returns a Deque holding a copy of s, with s[0] at the head.
// The capacity is exactly len(s) and memory is never shared with s.
func CopySliceToDeque[T any](s []T) *Deque[T] {
	d := new(Deque[T])
	d.PushTailSlice(s)
	return d
}

/*****************************************************************************
 * INDEX ARITHMETIC
 *****************************************************************************/

// physical maps logical index i, 0 <= i <= len(d.buf), to its storage slot.
// Requires len(d.buf) > 0.
func (d *Deque[T]) physical(i int) int {
	p := d.head + i
	if p >= len(d.buf) {
		p -= len(d.buf)
	}
	return p
}

func (d *Deque[T]) advance(idx int) int {
	if idx == len(d.buf)-1 {
		return 0
	}
	return idx + 1
}

func (d *Deque[T]) retreat(idx int) int {
	if idx == 0 {
		return len(d.buf) - 1
	}
	return idx - 1
}

// segments returns the physical runs holding logical elements
// [start, start+n). The second run is nil unless the range wraps.
// Requires 0 <= start and start+n <= d.size.
func (d *Deque[T]) segments(start, n int) (a, b []T) {
	if n == 0 {
		return nil, nil
	}
	s := d.physical(start)
	if s+n <= len(d.buf) {
		return d.buf[s : s+n], nil
	}
	return d.buf[s:], d.buf[:s+n-len(d.buf)]
}

// linearize copies the logical contents into fresh storage of length
// capacity, which must be at least d.size, starting at index 0.
func (d *Deque[T]) linearize(capacity int) []T {
	buf := make([]T, capacity)
	a, b := d.segments(0, d.size)
	n := copy(buf, a)
	copy(buf[n:], b)
	return buf
}

func (d *Deque[T]) checkIndex(i int) error {
	if i < 0 || i >= d.size {
		return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, d.size)
	}
	return nil
}

/*****************************************************************************
 * CAPACITY
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Cap returns the length of the backing storage or 0 if nil.
func (d *Deque[T]) Cap() int {
	if d == nil {
		return 0
	}
	return len(d.buf)
}

// Space returns how many elements fit before the next push reallocates.
func (d *Deque[T]) Space() int { return len(d.buf) - d.size }

// Empty returns whether the Deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.size == len(d.buf) }

// GrowTo ensures the storage holds at least minCapacity elements.
//
// If the capacity already suffices nothing happens, and in particular the
// storage is not compacted. An empty storage is allocated at exactly
// minCapacity. Otherwise the capacity grows to the larger of 1.5 times its
// current value and minCapacity, and the elements are copied so the head
// sits at index 0 of the new storage.
//
// It returns an error if minCapacity is negative.
func (d *Deque[T]) GrowTo(minCapacity int) error {
	if minCapacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, minCapacity)
	}
	d.grow(minCapacity)
	return nil
}

func (d *Deque[T]) grow(minCapacity int) {
	capacity := len(d.buf)
	if minCapacity <= capacity {
		return
	}
	if capacity == 0 {
		d.buf = make([]T, minCapacity)
		d.head = 0
		return
	}
	d.buf = d.linearize(max(capacity+capacity/2, minCapacity))
	d.head = 0
}

// Reserve ensures n more elements can be pushed without reallocating. It
// returns an error if n is negative.
func (d *Deque[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, n)
	}
	d.grow(d.size + n)
	return nil
}

/*****************************************************************************
 * HEAD API
 *****************************************************************************/

// PushHead puts v in front of the current head. It reallocates if the Deque
// is full.
func (d *Deque[T]) PushHead(v T) {
	d.grow(d.size + 1)
	// Growth moves the head, so step back from the new position.
	d.head = d.retreat(d.head)
	d.buf[d.head] = v
	d.size++
}

// Head returns the first element. It returns ErrEmpty if the Deque is empty.
func (d *Deque[T]) Head() (v T, err error) {
	if d.size == 0 {
		return v, fmt.Errorf("%w: head of empty deque", ErrEmpty)
	}
	return d.buf[d.head], nil
}

// PopHead removes the first element and returns it. It returns ErrEmpty if
// the Deque is empty. The vacated slot is not zeroed.
func (d *Deque[T]) PopHead() (v T, err error) {
	if d.size == 0 {
		return v, fmt.Errorf("%w: pop head of empty deque", ErrEmpty)
	}
	v = d.buf[d.head]
	d.head = d.advance(d.head)
	d.size--
	return v, nil
}

// RemoveHead drops the first count elements in O(1). Removing more elements
// than the Deque holds empties it. It returns an error if count is negative.
func (d *Deque[T]) RemoveHead(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	switch {
	case count == 0 || d.size == 0:
	case count >= d.size:
		d.Clear()
	default:
		d.head = d.physical(count)
		d.size -= count
	}
	return nil
}

/*****************************************************************************
 * TAIL API
 *****************************************************************************/

// PushTail puts v after the current tail. It reallocates if the Deque is
// full.
func (d *Deque[T]) PushTail(v T) {
	d.grow(d.size + 1)
	d.buf[d.physical(d.size)] = v
	d.size++
}

// Tail returns the last element. It returns ErrEmpty if the Deque is empty.
func (d *Deque[T]) Tail() (v T, err error) {
	if d.size == 0 {
		return v, fmt.Errorf("%w: tail of empty deque", ErrEmpty)
	}
	return d.buf[d.physical(d.size-1)], nil
}

// PopTail removes the last element and returns it. It returns ErrEmpty if the
// Deque is empty. The vacated slot is not zeroed.
func (d *Deque[T]) PopTail() (v T, err error) {
	if d.size == 0 {
		return v, fmt.Errorf("%w: pop tail of empty deque", ErrEmpty)
	}
	v = d.buf[d.physical(d.size-1)]
	d.size--
	return v, nil
}

// RemoveTail drops the last count elements in O(1). Removing more elements
// than the Deque holds empties it. It returns an error if count is negative.
func (d *Deque[T]) RemoveTail(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	switch {
	case count == 0 || d.size == 0:
	case count >= d.size:
		d.Clear()
	default:
		d.size -= count
	}
	return nil
}

/*****************************************************************************
 * RANDOM ACCESS
 *****************************************************************************/

// Get returns the i-th element, counting from the head. It returns
// ErrIndexOutOfRange unless 0 <= i < Len().
func (d *Deque[T]) Get(i int) (v T, err error) {
	if err = d.checkIndex(i); err != nil {
		return v, err
	}
	return d.buf[d.physical(i)], nil
}

// Set overwrites the i-th element, counting from the head. It returns
// ErrIndexOutOfRange unless 0 <= i < Len().
func (d *Deque[T]) Set(i int, v T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.buf[d.physical(i)] = v
	return nil
}

/*****************************************************************************
 * WHOLE DEQUE
 *****************************************************************************/

// Clear empties the Deque in O(1). Capacity is retained and the storage is
// neither freed nor zeroed.
func (d *Deque[T]) Clear() { d.head, d.size = 0, 0 }

// Copy returns an independent clone with the same capacity and layout.
func (d *Deque[T]) Copy() *Deque[T] {
	c := &Deque[T]{head: d.head, size: d.size}
	if len(d.buf) > 0 {
		c.buf = make([]T, len(d.buf))
		copy(c.buf, d.buf)
	}
	return c
}

// Compact moves the elements into fresh storage of the same capacity so that
// the head is at index 0 and nothing wraps.
func (d *Deque[T]) Compact() {
	if len(d.buf) == 0 {
		return
	}
	d.buf = d.linearize(len(d.buf))
	d.head = 0
}

// TrimToSize reallocates the storage to exactly Len() elements, with the head
// at index 0. Trimming an empty Deque releases its storage.
func (d *Deque[T]) TrimToSize() {
	if d.size == 0 {
		d.buf, d.head = nil, 0
		return
	}
	d.buf = d.linearize(d.size)
	d.head = 0
}
