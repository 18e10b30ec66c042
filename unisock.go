package unisock

import (
	"context"
	"time"

	"github.com/opd-ai/unisock/sockaddr"
	"github.com/opd-ai/unisock/transport"
)

// Listen parses addr and binds a listener for it. The address may be a
// "host:port" endpoint, a "/path" or "./path" socket file path, or the
// explicit "unix:<path>" form.
func Listen(addr string) (*transport.Listener, error) {
	return ListenContext(context.Background(), addr)
}

// ListenContext is Listen with a caller-supplied context covering the
// bind.
func ListenContext(ctx context.Context, addr string) (*transport.Listener, error) {
	named, err := sockaddr.ParseNamedAddr(addr)
	if err != nil {
		return nil, err
	}
	return transport.Bind(ctx, named)
}

// Dial parses addr and connects to it, accepting the same address forms
// as Listen.
func Dial(addr string) (*transport.Stream, error) {
	return DialContext(context.Background(), addr)
}

// DialTimeout connects with a timeout. If timeout is 0, no timeout is
// applied.
func DialTimeout(addr string, timeout time.Duration) (*transport.Stream, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return DialContext(ctx, addr)
}

// DialContext connects with a caller-supplied context covering the
// connection attempt.
func DialContext(ctx context.Context, addr string) (*transport.Stream, error) {
	named, err := sockaddr.ParseNamedAddr(addr)
	if err != nil {
		return nil, err
	}
	return transport.Connect(ctx, named)
}
