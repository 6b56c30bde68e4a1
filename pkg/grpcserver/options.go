package grpcserver

import (
	"net"
	"time"
)

type Option func(*Server)

func WithPort(port string) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort("", port)
	}
}

// WithListener serves on l instead of opening a TCP port.
func WithListener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}
