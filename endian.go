package ringdeque

import (
	"encoding/binary"
	"fmt"
)

// PopHeadUint16 removes the first 2 bytes of d and decodes them in order.
// It returns ErrEmpty, leaving d untouched, if fewer than 2 bytes remain.
func PopHeadUint16(d *Deque[byte], order binary.ByteOrder) (uint16, error) {
	var b [2]byte
	if err := popHead(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint16(b[:]), nil
}

// PopHeadUint32 removes the first 4 bytes of d and decodes them in order.
func PopHeadUint32(d *Deque[byte], order binary.ByteOrder) (uint32, error) {
	var b [4]byte
	if err := popHead(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint32(b[:]), nil
}

// PopHeadUint64 removes the first 8 bytes of d and decodes them in order.
func PopHeadUint64(d *Deque[byte], order binary.ByteOrder) (uint64, error) {
	var b [8]byte
	if err := popHead(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint64(b[:]), nil
}

// PopTailUint16 removes the last 2 bytes of d and decodes them, read from
// head to tail, in order. It returns ErrEmpty, leaving d untouched, if fewer
// than 2 bytes remain.
func PopTailUint16(d *Deque[byte], order binary.ByteOrder) (uint16, error) {
	var b [2]byte
	if err := popTail(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint16(b[:]), nil
}

// PopTailUint32 removes the last 4 bytes of d and decodes them in order.
func PopTailUint32(d *Deque[byte], order binary.ByteOrder) (uint32, error) {
	var b [4]byte
	if err := popTail(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint32(b[:]), nil
}

// PopTailUint64 removes the last 8 bytes of d and decodes them in order.
func PopTailUint64(d *Deque[byte], order binary.ByteOrder) (uint64, error) {
	var b [8]byte
	if err := popTail(d, b[:]); err != nil {
		return 0, err
	}
	return order.Uint64(b[:]), nil
}

func popHead(d *Deque[byte], p []byte) error {
	if d.size < len(p) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrEmpty, len(p), d.size)
	}
	d.CopyInto(p, 0)
	return d.RemoveHead(len(p))
}

func popTail(d *Deque[byte], p []byte) error {
	if d.size < len(p) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrEmpty, len(p), d.size)
	}
	x, y := d.segments(d.size-len(p), len(p))
	copy(p[copy(p, x):], y)
	return d.RemoveTail(len(p))
}
