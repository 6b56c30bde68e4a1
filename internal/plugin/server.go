package plugin

import (
	"context"

	"github.com/Egor213/TerraTrack/internal/domain"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type server struct {
	processor Processor
}

// Register returns a grpcserver registration func exposing p as LogPlugin.
func Register(p Processor) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		s.RegisterService(&logPluginServiceDesc, &server{processor: p})
	}
}

func (s *server) ProcessLogs(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req domain.PluginRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %s", err)
	}

	log.WithField("logs", len(req.Logs)).Debug("ProcessLogs received")

	res, err := s.processor.ProcessLogs(ctx, req)
	if err != nil {
		if _, ok := status.FromError(err); ok {
			return nil, err
		}
		return nil, status.Errorf(codes.Internal, "process logs: %s", err)
	}

	out, err := toStruct(res)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode result: %s", err)
	}
	return out, nil
}
