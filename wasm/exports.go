//go:build wasm

package wasm

import (
	"unsafe"
)

// allocations keeps buffers handed out to the host reachable, keyed by their
// pointer.
var allocations = make(map[uintptr]*buffer)

// response keeps the last response reachable until the host has read it.
var response buffer

//go:wasmexport hornet-v1-malloc
func malloc(ptr uintptr, size uint32) uintptr {
	buf, ok := allocations[ptr]
	if !ok {
		buf = newBuffer(int(size))
	} else if buf.Grow(int(size)) {
		delete(allocations, ptr)
	}

	ptr = buf.Pointer()
	allocations[ptr] = buf
	return ptr
}

//go:wasmexport hornet-v1-command
func command(ptr uintptr, methodSize, bufferSize uint32) uint64 {
	input := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), bufferSize)

	method := input[:methodSize]
	req := input[methodSize:]

	response = handler.Handle(string(method), req)
	return response.PointerAndSize()
}
