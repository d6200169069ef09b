package ringdeque

import "errors"

// ErrIndexOutOfRange is returned when an index or a slice range falls outside
// the elements of a Deque, or when a range is inverted.
var ErrIndexOutOfRange = errors.New("ringdeque: index out of range")

// ErrEmpty is returned when peeking or popping an empty Deque, or when fewer
// elements remain than a multi-byte pop needs.
var ErrEmpty = errors.New("ringdeque: empty deque")

// ErrInvalidArgument is returned for negative capacities and counts.
var ErrInvalidArgument = errors.New("ringdeque: invalid argument")

// ErrInvalidRead is returned by FillFrom when a Reader reports a count outside
// the buffer it was given.
var ErrInvalidRead = errors.New("ringdeque: reader returned invalid count")
