//go:build unix

package transport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
)

func listenUnix(ctx context.Context, path string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "unix", path)
}

func listenUnixPrepared(ctx context.Context, path string, mode fs.FileMode) (net.Listener, error) {
	// Reclaim a stale socket file left behind by a previous process.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket file: %w", err)
	}

	ln, err := listenUnix(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(path, mode); err != nil {
		ln.Close()
		return nil, fmt.Errorf("set socket file mode: %w", err)
	}

	return ln, nil
}
