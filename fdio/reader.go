//go:build unix

// Package fdio reads raw file descriptors with the read(2) system call, for
// use as a byte source of ringdeque.Deque.FillFrom.
package fdio

import (
	"io"

	"golang.org/x/sys/unix"
)

// Reader reads from a file descriptor it does not own. Closing the
// descriptor is up to the caller.
type Reader struct {
	fd int
}

// NewReader returns a Reader over fd.
func NewReader(fd int) *Reader {
	return &Reader{fd: fd}
}

// Fd returns the underlying file descriptor.
func (r *Reader) Fd() int { return r.fd }

// Read implements io.Reader. Interrupted reads are retried, and a read of
// zero bytes is end of file. On a non-blocking descriptor with no data ready
// it returns unix.EAGAIN.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(r.fd, p)
		switch {
		case err == unix.EINTR:
			continue
		case err != nil:
			return 0, err
		case n == 0:
			return 0, io.EOF
		default:
			return n, nil
		}
	}
}
