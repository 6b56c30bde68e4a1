// Package plugin relays stored logs to external processors over gRPC.
//
// The wire contract is the LogPlugin service with a single unary
// ProcessLogs method. Requests and responses travel as
// google.protobuf.Struct so plugins in any language can implement it
// without sharing generated stubs.
package plugin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Egor213/TerraTrack/internal/domain"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "logplugin.LogPlugin"
	ProcessLogsMethod  = "/" + ServiceName + "/ProcessLogs"
	processLogsMessage = "ProcessLogs"
)

// Processor is implemented by plugin backends.
type Processor interface {
	ProcessLogs(ctx context.Context, req domain.PluginRequest) (domain.PluginResult, error)
}

type logPluginServer interface {
	ProcessLogs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var logPluginServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*logPluginServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: processLogsMessage,
			Handler:    processLogsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "log_plugin.proto",
}

func processLogsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(logPluginServer).ProcessLogs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessLogsMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(logPluginServer).ProcessLogs(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("to struct: %w", err)
	}
	return s, nil
}

func fromStruct(s *structpb.Struct, v any) error {
	b, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("from struct: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}
