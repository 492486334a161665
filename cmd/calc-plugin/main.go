//go:build wasm

// Command calc-plugin is the calculator Wasm plugin. Build it with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o calc-plugin.wasm ./cmd/calc-plugin
package main

import (
	"log/slog"
	"os"

	"github.com/lovromazgon/calc/grpc"
	"github.com/lovromazgon/calc/sdk"
	"github.com/lovromazgon/calc/wasm"
)

func main() {
	// The main function is required by the compiler, but will never actually
	// be called, so it can stay empty.
}

func init() {
	// The plugin is initialized in init.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "calc-plugin")

	srv := grpc.NewServer(grpc.WithLogger(logger))
	sdk.RegisterCalculator(srv, sdk.NewLocal(sdk.WithLocalLogger(logger)))
	wasm.Init(srv)
}
