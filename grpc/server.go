package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/lovromazgon/calc/internal/frame"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// serviceInfo wraps information about a service. It is very similar to
// grpc.ServiceDesc and is constructed from it for internal purposes.
type serviceInfo struct {
	// Contains the implementation for the methods in this service.
	serviceImpl any
	methods     map[string]*grpc.MethodDesc
}

type serverOptions struct {
	logger *slog.Logger
}

var defaultServerOptions = serverOptions{
	logger: slog.Default(),
}

var _ grpc.ServiceRegistrar = (*Server)(nil)

// Server dispatches requests received as raw bytes to registered gRPC
// services. It runs inside the Wasm plugin (see wasm.Init) or behind a
// LocalClientConn.
type Server struct {
	opts serverOptions

	mu       sync.RWMutex // guards following fields
	services map[string]*serviceInfo
}

// NewServer creates a Server without any registered services.
func NewServer(opt ...ServerOption) *Server {
	opts := defaultServerOptions
	for _, o := range opt {
		o.applyServer(&opts)
	}

	return &Server{
		opts:     opts,
		services: make(map[string]*serviceInfo),
	}
}

func (s *Server) RegisterService(sd *grpc.ServiceDesc, ss any) {
	if ss != nil {
		ht := reflect.TypeOf(sd.HandlerType).Elem()
		st := reflect.TypeOf(ss)
		if !st.Implements(ht) {
			s.opts.logger.Error("proto: Server.RegisterService found an incompatible handler type", "want", ht, "got", st)
			os.Exit(1) // Mirrors grpc.Server.RegisterService.
		}
	}
	s.register(sd, ss)
}

func (s *Server) register(sd *grpc.ServiceDesc, ss any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.logger.Debug("Registering service", "service", sd.ServiceName)
	if _, ok := s.services[sd.ServiceName]; ok {
		s.opts.logger.Error("proto: Server.RegisterService found duplicate service registration", "service", sd.ServiceName)
		os.Exit(1)
	}
	if len(sd.Streams) > 0 {
		s.opts.logger.Warn("proto: Server.RegisterService found stream service, streams are not supported in Wasm plugins", "service", sd.ServiceName)
	}
	info := &serviceInfo{
		serviceImpl: ss,
		methods:     make(map[string]*grpc.MethodDesc),
	}
	for i := range sd.Methods {
		d := &sd.Methods[i]
		info.methods[d.MethodName] = d
	}
	s.services[sd.ServiceName] = info
}

// Handle implements the wasm.Handler interface and processes the bytes sent to
// the plugin as a gRPC request. The full method name has the form
// "/service/method". The returned bytes are a framed response, see
// frame.Decode.
func (s *Server) Handle(fn string, reqBytes []byte) []byte {
	return s.handle(context.Background(), fn, reqBytes)
}

func (s *Server) handle(ctx context.Context, fn string, reqBytes []byte) []byte {
	service, method, ok := splitMethodName(fn)
	if !ok {
		return s.handleError(
			status.New(codes.Unimplemented, "malformed method name"),
			"method", fn,
		)
	}

	s.mu.RLock()
	srv, ok := s.services[service]
	s.mu.RUnlock()
	if !ok {
		return s.handleError(
			status.New(codes.Unimplemented, "unknown service"),
			"service", service,
		)
	}
	sd, ok := srv.methods[method]
	if !ok {
		return s.handleError(
			status.New(codes.Unimplemented, "unknown method"),
			"service", service, "method", method,
		)
	}

	decFn := func(v any) error {
		return protoUnmarshal(reqBytes, v)
	}

	resp, err := sd.Handler(srv.serviceImpl, ctx, decFn, nil)
	if err != nil {
		st, ok := status.FromError(err)
		if !ok {
			st = status.FromContextError(err)
		}
		// Errors returned by the service are meant for the caller, the server
		// only traces them.
		s.opts.logger.DebugContext(ctx, "proto: Server.Handle returned error", "service", service, "method", method, "code", st.Code(), "error", st.Message())
		return s.encodeStatus(st)
	}

	respBytes, err := frame.EncodeResponse(nil, resp)
	if err != nil {
		return s.handleError(
			status.New(codes.Internal, "error marshalling response"),
			"service", service, "method", method, "response", resp, "error", err,
		)
	}

	return respBytes
}

func (s *Server) handleError(st *status.Status, args ...any) []byte {
	s.opts.logger.Error(fmt.Sprintf("proto: Server.Handle %s", st.Message()), args...)
	return s.encodeStatus(st)
}

func (s *Server) encodeStatus(st *status.Status) []byte {
	out, err := frame.EncodeStatus(nil, st)
	if err != nil {
		panic(err)
	}
	return out
}

// splitMethodName splits "/service/method" into its service and method parts.
func splitMethodName(fn string) (service, method string, ok bool) {
	fn = strings.TrimPrefix(fn, "/")
	pos := strings.LastIndex(fn, "/")
	if pos <= 0 || pos == len(fn)-1 {
		return "", "", false
	}
	return fn[:pos], fn[pos+1:], true
}
