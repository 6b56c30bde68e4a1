package plugin

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/TerraTrack/internal/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	timeout  time.Duration
	dialOpts []grpc.DialOption
}

type ClientOption func(*Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialOptions appends to the default insecure transport options.
func WithDialOptions(opts ...grpc.DialOption) ClientOption {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:  defaultTimeout,
		dialOpts: []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProcessLogs dials address, sends req and waits for the plugin's answer.
// A connection is opened per call; plugins are invoked rarely and may move.
func (c *Client) ProcessLogs(ctx context.Context, address string, req domain.PluginRequest) (domain.PluginResult, error) {
	in, err := toStruct(req)
	if err != nil {
		return domain.PluginResult{}, err
	}

	conn, err := grpc.NewClient(address, c.dialOpts...)
	if err != nil {
		return domain.PluginResult{}, fmt.Errorf("dial %s: %w", address, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, ProcessLogsMethod, in, out); err != nil {
		if st, ok := status.FromError(err); ok {
			return domain.PluginResult{}, fmt.Errorf("plugin call failed: %s: %w", st.Message(), err)
		}
		return domain.PluginResult{}, fmt.Errorf("plugin call failed: %w", err)
	}

	var res domain.PluginResult
	if err := fromStruct(out, &res); err != nil {
		return domain.PluginResult{}, err
	}
	return res, nil
}
