// Package wasmtest assembles minimal plugin modules for tests. The command
// export of a module ignores the request and answers with a canned response,
// which lets the host side run without compiling a real plugin.
package wasmtest

const (
	MallocExport  = "hornet-v1-malloc"
	CommandExport = "hornet-v1-command"

	// ResponsePointer is the address of the canned response in memory.
	ResponsePointer = 1024
	// HeapPointer is the address returned by the first malloc call. Every
	// further call returns the address after the previous allocation.
	HeapPointer = 4096
)

const (
	i32 = 0x7f
	i64 = 0x7e
)

type module struct {
	resp         []byte
	mallocParams int
	omit         map[string]bool
}

// Option changes the assembled module.
type Option func(*module)

// WithMallocParams sets the number of i32 parameters of the malloc export.
func WithMallocParams(n int) Option {
	return func(m *module) { m.mallocParams = n }
}

// WithoutExport leaves the function with the given name unexported.
func WithoutExport(name string) Option {
	return func(m *module) { m.omit[name] = true }
}

// Module returns the binary of a module that exports memory, malloc and
// command. Command always returns resp.
func Module(resp []byte, opts ...Option) []byte {
	m := &module{
		resp:         resp,
		mallocParams: 2,
		omit:         make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m.assemble()
}

func (m *module) assemble() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	// Types: malloc (i32 * mallocParams) -> i32, command (i32, i32, i32) -> i64.
	types := []byte{0x02, 0x60}
	types = appendULEB128(types, uint64(m.mallocParams))
	for range m.mallocParams {
		types = append(types, i32)
	}
	types = append(types, 0x01, i32)
	types = append(types, 0x60, 0x03, i32, i32, i32, 0x01, i64)
	out = appendSection(out, 0x01, types)

	// Functions, one page of memory and the mutable heap pointer global.
	out = appendSection(out, 0x03, []byte{0x02, 0x00, 0x01})
	out = appendSection(out, 0x05, []byte{0x01, 0x00, 0x01})
	global := appendSLEB128([]byte{0x01, i32, 0x01, 0x41}, HeapPointer)
	out = appendSection(out, 0x06, append(global, 0x0b))

	exports := [][]byte{append(appendName(nil, "memory"), 0x02, 0x00)}
	for i, name := range []string{MallocExport, CommandExport} {
		if !m.omit[name] {
			exports = append(exports, append(appendName(nil, name), 0x00, byte(i)))
		}
	}
	section := appendULEB128(nil, uint64(len(exports)))
	for _, e := range exports {
		section = append(section, e...)
	}
	out = appendSection(out, 0x07, section)

	var malloc []byte
	if m.mallocParams >= 2 {
		// ptr := heap; heap += size; return ptr
		malloc = []byte{
			0x23, 0x00, // global.get 0
			0x23, 0x00, // global.get 0
			0x20, 0x01, // local.get 1
			0x6a,       // i32.add
			0x24, 0x00, // global.set 0
		}
	} else {
		malloc = appendSLEB128([]byte{0x41}, HeapPointer) // i32.const
	}
	command := appendSLEB128([]byte{0x42}, ResponsePointer<<32|int64(len(m.resp))) // i64.const
	code := []byte{0x02}
	code = appendBody(code, malloc)
	code = appendBody(code, command)
	out = appendSection(out, 0x0a, code)

	// One active segment in memory 0 holding the response.
	data := appendSLEB128([]byte{0x01, 0x00, 0x41}, ResponsePointer)
	data = append(data, 0x0b)
	data = appendULEB128(data, uint64(len(m.resp)))
	data = append(data, m.resp...)
	out = appendSection(out, 0x0b, data)

	return out
}

func appendSection(b []byte, id byte, content []byte) []byte {
	b = append(b, id)
	b = appendULEB128(b, uint64(len(content)))
	return append(b, content...)
}

func appendName(b []byte, s string) []byte {
	return append(appendULEB128(b, uint64(len(s))), s...)
}

// appendBody appends a function body without locals.
func appendBody(b []byte, code []byte) []byte {
	fn := append([]byte{0x00}, code...)
	fn = append(fn, 0x0b)
	b = appendULEB128(b, uint64(len(fn)))
	return append(b, fn...)
}

func appendULEB128(b []byte, v uint64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(b, c)
		}
		b = append(b, c|0x80)
	}
}

func appendSLEB128(b []byte, v int64) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			return append(b, c)
		}
		b = append(b, c|0x80)
	}
}
