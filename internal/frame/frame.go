// Package frame encodes responses returned by a plugin. Every response starts
// with a single byte that describes the rest of the payload.
package frame

import (
	"errors"
	"fmt"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const (
	// OK is followed by the marshalled response message.
	OK byte = iota
	// Status is followed by a marshalled google.rpc.Status.
	Status
)

// EncodeResponse frames a successful response message, reusing buf.
func EncodeResponse(buf []byte, resp any) ([]byte, error) {
	msg, ok := resp.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("proto: error marshalling data: expected proto.Message, got %T", resp)
	}
	out, err := proto.MarshalOptions{}.MarshalAppend(append(buf[:0], OK), msg)
	if err != nil {
		return nil, fmt.Errorf("proto: error marshalling data: %w", err)
	}
	return out, nil
}

// EncodeStatus frames an error status, reusing buf.
func EncodeStatus(buf []byte, st *status.Status) ([]byte, error) {
	out, err := proto.MarshalOptions{}.MarshalAppend(append(buf[:0], Status), st.Proto())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status: %w", err)
	}
	return out, nil
}

// Decode reads a framed response. A status frame is returned as a gRPC status
// error, a message frame is unmarshalled into resp.
func Decode(data []byte, resp proto.Message) error {
	if len(data) == 0 {
		return errors.New("empty response")
	}

	switch data[0] {
	case OK:
		if err := proto.Unmarshal(data[1:], resp); err != nil {
			return fmt.Errorf("failed to unmarshal protobuf command response: %w", err)
		}
		return nil
	case Status:
		var st spb.Status
		if err := proto.Unmarshal(data[1:], &st); err != nil {
			return fmt.Errorf("failed to unmarshal status response: %w", err)
		}
		return status.ErrorProto(&st)
	default:
		return fmt.Errorf("unknown response frame type %d", data[0])
	}
}
