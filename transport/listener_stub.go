//go:build !unix

package transport

import (
	"context"
	"io/fs"
	"net"
)

func listenUnix(ctx context.Context, path string) (net.Listener, error) {
	return nil, ErrUnixUnsupported
}

func listenUnixPrepared(ctx context.Context, path string, mode fs.FileMode) (net.Listener, error) {
	return nil, ErrUnixUnsupported
}
