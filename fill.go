package ringdeque

import (
	"errors"
	"fmt"
	"io"
)

// Reader is a source of elements with the semantics of io.Reader: Read
// fills up to len(p) elements and returns how many it wrote, and io.EOF once
// the source is exhausted. Every io.Reader is a Reader[byte].
type Reader[T any] interface {
	Read(p []T) (n int, err error)
}

// FillFrom reads from src straight into the unused capacity of the Deque,
// appending after the tail. It never grows the storage.
//
// The free region is read in one call when it is contiguous and in two when
// it wraps around the end of the storage. An empty Deque is rewound first so
// that its whole capacity is one region. A short read ends the fill early;
// call FillFrom again to keep reading.
//
// FillFrom returns the number of elements appended. If the Deque is full it
// returns 0 without calling src. If src is exhausted before yielding anything
// it returns 0, io.EOF; an io.EOF that follows some data is not reported, so
// the next call sees it instead. Other errors from src are returned alongside
// the count appended before them.
func (d *Deque[T]) FillFrom(src Reader[T]) (int, error) {
	space := len(d.buf) - d.size
	if space == 0 {
		return 0, nil
	}
	if d.size == 0 {
		d.head = 0
	}

	a, b := d.free(space)
	n, err := d.readInto(src, a)
	if err != nil || n < len(a) || len(b) == 0 {
		return finishFill(n, err)
	}
	m, err := d.readInto(src, b)
	return finishFill(n+m, err)
}

// free returns the one or two runs of unused slots after the tail.
func (d *Deque[T]) free(space int) (a, b []T) {
	tail := d.physical(d.size)
	if tail+space <= len(d.buf) {
		return d.buf[tail : tail+space], nil
	}
	return d.buf[tail:], d.buf[:tail+space-len(d.buf)]
}

func (d *Deque[T]) readInto(src Reader[T], p []T) (int, error) {
	n, err := src.Read(p)
	if n < 0 || n > len(p) {
		return 0, fmt.Errorf("%w: %d for buffer of %d", ErrInvalidRead, n, len(p))
	}
	d.size += n
	return n, err
}

func finishFill(n int, err error) (int, error) {
	if errors.Is(err, io.EOF) && n > 0 {
		return n, nil
	}
	return n, err
}
