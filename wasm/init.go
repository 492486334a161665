package wasm

import (
	"github.com/lovromazgon/calc/internal/frame"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errNoHandler is returned to the host for every call made before Init.
var errNoHandler = status.New(codes.FailedPrecondition, "no handler set, call wasm.Init() in the plugin code to set a handler")

var handler Handler = HandlerFunc(noHandler)

// Handler receives the calls the host makes to the plugin. Responses must be
// framed, see frame.Decode. The grpc.Server implements it.
type Handler interface {
	// Handle gets called for every host call to the Wasm plugin.
	Handle(method string, req []byte) (resp []byte)
}

// HandlerFunc is a function type that implements the Handler interface.
type HandlerFunc func(method string, req []byte) (resp []byte)

func (f HandlerFunc) Handle(method string, req []byte) (resp []byte) { return f(method, req) }

// Init sets the handler of host calls. Call it from an init function of the
// plugin, calls made before that fail with FailedPrecondition.
func Init(h Handler) {
	handler = h
}

func noHandler(string, []byte) []byte {
	resp, err := frame.EncodeStatus(nil, errNoHandler)
	if err != nil {
		panic(err)
	}
	return resp
}
