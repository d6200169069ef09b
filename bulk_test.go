package ringdeque

import (
	"errors"
	"slices"
	"testing"
)

func TestPushTailSlice(t *testing.T) {
	t.Run("adopts into empty storage", func(t *testing.T) {
		var d Deque[int]
		in := []int{1, 2, 3}
		d.PushTailSlice(in)
		in[0] = 0
		if d.Cap() != 3 || d.head != 0 || !slices.Equal(d.ToSlice(), []int{1, 2, 3}) {
			t.Fatalf("cap %d head %d contents %v", d.Cap(), d.head, d)
		}
	})
	t.Run("empty input", func(t *testing.T) {
		d := wrapped()
		d.PushTailSlice(nil)
		if d.Len() != 4 || d.Cap() != 6 {
			t.Fatalf("len %d cap %d", d.Len(), d.Cap())
		}
	})
	t.Run("contiguous free region", func(t *testing.T) {
		d, _ := MakeDequeWithCapacity[int](8)
		d.PushTail(1)
		d.PushTailSlice([]int{2, 3, 4})
		if d.Cap() != 8 || !slices.Equal(d.ToSlice(), []int{1, 2, 3, 4}) {
			t.Fatalf("cap %d contents %v", d.Cap(), d)
		}
	})
	t.Run("split across wrap", func(t *testing.T) {
		d := &Deque[int]{buf: make([]int, 6), head: 3}
		d.PushTail(1)
		d.PushTail(2)
		d.PushTailSlice([]int{3, 4, 5})
		if d.Cap() != 6 {
			t.Fatalf("cap %d, want no growth", d.Cap())
		}
		if !slices.Equal(d.buf, []int{4, 5, 0, 1, 2, 3}) {
			t.Fatalf("storage %v", d.buf)
		}
		checkInvariants(t, d)
	})
	t.Run("grows once", func(t *testing.T) {
		d := wrapped()
		d.PushTailSlice([]int{50, 60, 70})
		if d.Cap() != 9 || d.head != 0 {
			t.Fatalf("cap %d head %d", d.Cap(), d.head)
		}
		if got := d.ToSlice(); !slices.Equal(got, []int{10, 20, 30, 40, 50, 60, 70}) {
			t.Fatalf("ToSlice() = %v", got)
		}
	})
}

func TestPushTailDeque(t *testing.T) {
	t.Run("wrapped source", func(t *testing.T) {
		d := CopySliceToDeque([]int{1, 2})
		src := wrapped()
		d.PushTailDeque(src)
		if got := d.ToSlice(); !slices.Equal(got, []int{1, 2, 10, 20, 30, 40}) {
			t.Fatalf("ToSlice() = %v", got)
		}
		if src.Len() != 4 {
			t.Fatal("source modified")
		}
	})
	t.Run("wrapped destination without growth", func(t *testing.T) {
		d := &Deque[int]{buf: make([]int, 8), head: 6}
		d.PushTail(1)
		src := wrapped()
		d.PushTailDeque(src)
		if d.Cap() != 8 {
			t.Fatalf("cap %d", d.Cap())
		}
		if got := d.ToSlice(); !slices.Equal(got, []int{1, 10, 20, 30, 40}) {
			t.Fatalf("ToSlice() = %v", got)
		}
		checkInvariants(t, d)
	})
	t.Run("into empty storage", func(t *testing.T) {
		var d Deque[int]
		d.PushTailDeque(wrapped())
		if d.Cap() != 4 || !slices.Equal(d.ToSlice(), []int{10, 20, 30, 40}) {
			t.Fatalf("cap %d contents %v", d.Cap(), &d)
		}
	})
	t.Run("itself", func(t *testing.T) {
		d := wrapped()
		d.PushTailDeque(d)
		if got := d.ToSlice(); !slices.Equal(got, []int{10, 20, 30, 40, 10, 20, 30, 40}) {
			t.Fatalf("ToSlice() = %v", got)
		}
		e := wrapped()
		_ = e.GrowTo(20)
		_ = e.RemoveHead(1)
		e.PushTailDeque(e)
		if got := e.ToSlice(); !slices.Equal(got, []int{20, 30, 40, 20, 30, 40}) {
			t.Fatalf("ToSlice() = %v", got)
		}
	})
	t.Run("empty and nil sources", func(t *testing.T) {
		d := wrapped()
		d.PushTailDeque(nil)
		d.PushTailDeque(MakeDeque[int]())
		if d.Len() != 4 {
			t.Fatalf("len %d", d.Len())
		}
	})
}

func TestCopyInto(t *testing.T) {
	tests := []struct {
		name   string
		dest   int
		offset int
		n      int
		want   []int
	}{
		{"exact", 4, 0, 4, []int{10, 20, 30, 40}},
		{"short destination", 3, 0, 3, []int{10, 20, 30}},
		{"single leader", 1, 0, 1, []int{10}},
		{"offset", 6, 2, 4, []int{0, 0, 10, 20, 30, 40}},
		{"offset limits room", 4, 1, 3, []int{0, 10, 20, 30}},
		{"offset at end", 4, 4, 0, []int{0, 0, 0, 0}},
		{"negative offset", 4, -1, 0, []int{0, 0, 0, 0}},
		{"empty destination", 0, 0, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := make([]int, tt.dest)
			if n := wrapped().CopyInto(dest, tt.offset); n != tt.n {
				t.Fatalf("CopyInto() = %d, want %d", n, tt.n)
			}
			if !slices.Equal(dest, tt.want) {
				t.Fatalf("dest = %v, want %v", dest, tt.want)
			}
		})
	}

	var empty Deque[int]
	if n := empty.CopyInto(make([]int, 3), 0); n != 0 {
		t.Fatalf("CopyInto() from empty = %d", n)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		start, end int
		want       []int
	}{
		{1, 3, []int{20, 30}},
		{0, 2, []int{10, 20}},
		{2, 4, []int{30, 40}},
		{1, 4, []int{20, 30, 40}},
		{0, 4, []int{10, 20, 30, 40}},
		{3, 4, []int{40}},
		{2, 2, []int{}},
		{0, 0, []int{}},
	}
	for _, tt := range tests {
		d := wrapped()
		s, err := d.Slice(tt.start, tt.end)
		if err != nil {
			t.Fatalf("Slice(%d, %d) err = %v", tt.start, tt.end, err)
		}
		if got := s.ToSlice(); !slices.Equal(got, tt.want) {
			t.Errorf("Slice(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
		if s.Cap() != len(tt.want) || s.head != 0 {
			t.Errorf("Slice(%d, %d) cap %d head %d", tt.start, tt.end, s.Cap(), s.head)
		}
		flat, err := d.SliceToSlice(tt.start, tt.end)
		if err != nil || !slices.Equal(flat, tt.want) {
			t.Errorf("SliceToSlice(%d, %d) = %v, %v", tt.start, tt.end, flat, err)
		}
	}

	d := wrapped()
	full, _ := d.Slice(0, d.Len())
	_ = full.Set(0, 0)
	if v, _ := d.Get(0); v != 10 {
		t.Fatal("full slice shares storage")
	}

	var empty Deque[int]
	if s, err := empty.Slice(0, 0); err != nil || s.Len() != 0 {
		t.Fatalf("Slice(0, 0) on empty = %v, %v", s, err)
	}
}

func TestSliceErrors(t *testing.T) {
	for _, r := range [][2]int{{-1, 2}, {4, 4}, {3, 2}, {0, 5}, {5, 6}} {
		d := wrapped()
		if _, err := d.Slice(r[0], r[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Slice(%d, %d) err = %v", r[0], r[1], err)
		}
		if _, err := d.SliceToSlice(r[0], r[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SliceToSlice(%d, %d) err = %v", r[0], r[1], err)
		}
	}
}
