// Package wasm contains the plugin side of the host/plugin bridge. It exports
// the functions the host calls and forwards every request to a Handler.
package wasm

import (
	"unsafe"
)

// buffer is a byte slice shared with the host. Its address is handed to the
// host, which reads and writes the module memory directly.
type buffer []byte

func newBuffer(size int) *buffer {
	b := make(buffer, size)
	return &b
}

// Grow resizes the buffer to size, keeping its contents. It returns true if
// the buffer had to be reallocated, in which case Pointer changes.
func (b *buffer) Grow(size int) bool {
	allocated := false
	if cap(*b) < size {
		*b = append((*b)[:cap(*b)], make([]byte, size-cap(*b))...)
		allocated = true
	}
	// Never shrinks.
	if len(*b) < size {
		*b = (*b)[:size]
	}
	return allocated
}

// Pointer returns the address of the buffer's data, or 0 for an empty buffer.
func (b *buffer) Pointer() uintptr {
	if len(*b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&(*b)[0]))
}

// PointerAndSize returns the pointer and size in a single uint64.
// The higher 32 bits are the pointer, and the lower 32 bits are the size.
func (b *buffer) PointerAndSize() uint64 {
	return (uint64(b.Pointer()) << 32) | uint64(len(*b))
}
