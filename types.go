package ringdeque

// Named instantiations for the element types the package is tuned for.
type (
	BoolDeque    = Deque[bool]
	ByteDeque    = Deque[byte]
	Int8Deque    = Deque[int8]
	Int16Deque   = Deque[int16]
	Uint16Deque  = Deque[uint16]
	Int32Deque   = Deque[int32]
	Uint32Deque  = Deque[uint32]
	Int64Deque   = Deque[int64]
	Uint64Deque  = Deque[uint64]
	Float32Deque = Deque[float32]
	Float64Deque = Deque[float64]
	RuneDeque    = Deque[rune]
)
