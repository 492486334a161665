package grpc

import (
	"context"
	"errors"

	"github.com/lovromazgon/calc/internal/frame"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var _ grpc.ClientConnInterface = (*LocalClientConn)(nil)

// LocalClientConn sends requests to a Server in the same process. Requests
// and responses go through the same encoding as calls to a Wasm plugin, which
// makes it possible to run a plugin implementation without a Wasm runtime.
type LocalClientConn struct {
	srv *Server
}

// NewLocalClient returns a client connection that dispatches requests to srv.
func NewLocalClient(srv *Server) *LocalClientConn {
	return &LocalClientConn{srv: srv}
}

func (c *LocalClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("streams are not supported by local client")
}

func (c *LocalClientConn) Invoke(
	ctx context.Context,
	method string,
	req, resp any,
	opts ...grpc.CallOption,
) error {
	reqMsg, respMsg, err := requestMessages(req, resp)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}

	reqBytes, err := protoMarshalAppend(nil, reqMsg)
	if err != nil {
		return err
	}

	return frame.Decode(c.srv.handle(ctx, method, reqBytes), respMsg)
}
