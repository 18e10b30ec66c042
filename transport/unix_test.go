//go:build unix

package transport

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/unisock/sockaddr"
)

func socketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "app.sock")
}

func TestBindUnixPath(t *testing.T) {
	path := socketPath(t)
	ln, err := Bind(context.Background(), sockaddr.NamedUnixPath(path))
	require.NoError(t, err)
	defer ln.Close()

	assert.Equal(t, sockaddr.FamilyUnix, ln.Addr().Family)
	assert.Equal(t, path, ln.Addr().Path)

	_, err = os.Stat(path)
	require.NoError(t, err, "bind should create the socket file")
}

func TestAcceptAndConnectUnix(t *testing.T) {
	path := socketPath(t)
	ln, err := Bind(context.Background(), sockaddr.NamedUnixPath(path))
	require.NoError(t, err)
	defer ln.Close()

	type result struct {
		stream *Stream
		err    error
	}
	accepted := make(chan result, 1)
	go func() {
		stream, err := ln.Accept()
		accepted <- result{stream, err}
	}()

	client, err := Connect(context.Background(), ln.Addr())
	require.NoError(t, err)
	defer client.Close()

	res := <-accepted
	require.NoError(t, res.err)
	server := res.stream
	defer server.Close()

	// The connecting side is never bound to a name: its local address is
	// always the collapsed abstract-or-unnamed state.
	local := client.Socket().LocalAddr()
	require.Equal(t, sockaddr.FamilyUnix, local.Family)
	assert.True(t, local.Unix.IsAbstractOrUnnamed())

	// The client's peer is the bound path; so is the server's local.
	want := sockaddr.Unix(sockaddr.UnixPathname(path))
	assert.True(t, client.Socket().PeerAddr().Equal(want))
	assert.True(t, server.Socket().LocalAddr().Equal(want))

	// The server observes an unnamed peer, classified at the boundary.
	peer := server.Socket().PeerAddr()
	require.Equal(t, sockaddr.FamilyUnix, peer.Family)
	assert.True(t, peer.Unix.IsAbstractOrUnnamed())

	// Bytes pass through.
	_, err = client.Write([]byte("hello"))
	require.NoError(t, err)
	buf := make([]byte, 5)
	require.NoError(t, server.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, err = server.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))
}

func TestBindFailsOnStaleSocketFile(t *testing.T) {
	path := socketPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := Bind(context.Background(), sockaddr.NamedUnixPath(path))
	require.Error(t, err, "plain bind must not reclaim a stale file")

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "bind", opErr.Op)
}

func TestBindAndPrepareUnixReclaimsStaleFile(t *testing.T) {
	path := socketPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ln, err := BindAndPrepareUnix(context.Background(), path, nil)
	require.NoError(t, err)
	defer ln.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSocketMode, info.Mode().Perm())
}

func TestBindAndPrepareUnixAppliesConfiguredMode(t *testing.T) {
	path := socketPath(t)

	ln, err := BindAndPrepareUnix(context.Background(), path, &ListenConfig{SocketMode: 0o660})
	require.NoError(t, err)
	defer ln.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o660), info.Mode().Perm())
}

func TestBindAndPrepareUnixFatalRemovalFailure(t *testing.T) {
	// A non-empty directory at the path cannot be removed with a plain
	// remove; the preparation must abort the bind with that error rather
	// than proceed.
	dir := socketPath(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "occupied"), 0o755))

	_, err := BindAndPrepareUnix(context.Background(), dir, nil)
	require.Error(t, err)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "bind", opErr.Op)
}

func TestConnectUnixNoListener(t *testing.T) {
	_, err := Connect(context.Background(), sockaddr.NamedUnixPath(socketPath(t)))
	require.Error(t, err)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "connect", opErr.Op)
}
