//go:build !unix

package transport

import (
	"context"
	"net"
)

func dialUnix(ctx context.Context, path string) (net.Conn, error) {
	return nil, ErrUnixUnsupported
}
