package wasm

import (
	"testing"

	"github.com/matryer/is"
)

func TestBuffer_NewBuffer(t *testing.T) {
	t.Run("should create a buffer with a specific size", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(128)

		is.Equal(len(*b), 128)
		is.True(cap(*b) >= 128)
	})

	t.Run("should create an empty buffer for size 0", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(0)
		is.True(b != nil)
		is.Equal(len(*b), 0)
		is.Equal(b.Pointer(), uintptr(0))
	})
}

func TestBuffer_Grow(t *testing.T) {
	t.Run("should reallocate and keep the data", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(10)
		copy(*b, "0123456789")

		before := b.Pointer()
		newSize := cap(*b) + 10

		is.True(b.Grow(newSize)) // reallocated
		is.Equal(len(*b), newSize)
		is.True(b.Pointer() != before)
		is.Equal(string((*b)[:10]), "0123456789")
	})

	t.Run("should reslice when capacity is sufficient", func(t *testing.T) {
		is := is.New(t)
		b := buffer(make([]byte, 5, 20))
		copy(b, "hello")
		before := b.Pointer()

		is.True(!b.Grow(15)) // not reallocated
		is.Equal(len(b), 15)
		is.Equal(cap(b), 20)
		is.Equal(b.Pointer(), before)
		is.Equal(string(b[:5]), "hello")
	})

	t.Run("should not shrink", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(16)

		is.True(!b.Grow(4))
		is.Equal(len(*b), 16)
	})

	t.Run("should grow an empty buffer", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(0)

		is.True(b.Grow(8))
		is.Equal(len(*b), 8)
		is.True(b.Pointer() != 0)
	})
}

func TestBuffer_PointerAndSize(t *testing.T) {
	t.Run("should pack pointer and size", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(256)

		packed := b.PointerAndSize()
		is.True(packed != 0)

		// Wasm pointers are 32 bits wide, on a 64-bit test host only the lower
		// half of the pointer survives packing.
		is.Equal(uint32(packed>>32), uint32(b.Pointer()))
		is.Equal(uint32(packed), uint32(256))
	})

	t.Run("should return 0 for an empty buffer", func(t *testing.T) {
		is := is.New(t)
		b := newBuffer(0)
		is.Equal(b.PointerAndSize(), uint64(0))
	})
}
