package wasmtest

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestModule(t *testing.T) {
	ctx := context.Background()

	t.Run("should return a new region from every malloc call", func(t *testing.T) {
		is := is.New(t)
		r := wazero.NewRuntime(ctx)
		defer r.Close(ctx)

		mod, err := r.Instantiate(ctx, Module([]byte("resp")))
		is.NoErr(err)

		malloc := mod.ExportedFunction(MallocExport)
		first, err := malloc.Call(ctx, 0, 10)
		is.NoErr(err)
		second, err := malloc.Call(ctx, 0, 10)
		is.NoErr(err)

		is.Equal(api.DecodeU32(first[0]), uint32(HeapPointer))
		is.Equal(api.DecodeU32(second[0]), uint32(HeapPointer+10))
	})

	t.Run("should answer command with the canned response", func(t *testing.T) {
		is := is.New(t)
		r := wazero.NewRuntime(ctx)
		defer r.Close(ctx)

		mod, err := r.Instantiate(ctx, Module([]byte("resp")))
		is.NoErr(err)

		results, err := mod.ExportedFunction(CommandExport).Call(ctx, 0, 0, 0)
		is.NoErr(err)

		ptr, size := uint32(results[0]>>32), uint32(results[0])
		is.Equal(ptr, uint32(ResponsePointer))
		got, ok := mod.Memory().Read(ptr, size)
		is.True(ok)
		is.Equal(string(got), "resp")
	})

	t.Run("should apply options", func(t *testing.T) {
		is := is.New(t)
		r := wazero.NewRuntime(ctx)
		defer r.Close(ctx)

		compiled, err := r.CompileModule(ctx, Module(nil, WithMallocParams(1), WithoutExport(CommandExport)))
		is.NoErr(err)

		fns := compiled.ExportedFunctions()
		_, ok := fns[CommandExport]
		is.True(!ok)
		is.Equal(len(fns[MallocExport].ParamTypes()), 1)
	})
}
