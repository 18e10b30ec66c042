package transport

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/unisock/sockaddr"
)

// DefaultSocketMode is the mode applied to a unix socket file by
// BindAndPrepareUnix when the config does not set one. Historical
// default; override it through ListenConfig.SocketMode if the socket
// file needs to be readable.
const DefaultSocketMode fs.FileMode = 0o222

// ListenConfig carries the options for BindAndPrepareUnix.
type ListenConfig struct {
	// SocketMode is the permission mode applied to the socket file
	// after a successful bind. Zero means DefaultSocketMode.
	SocketMode fs.FileMode
}

func (c *ListenConfig) mode() fs.FileMode {
	if c == nil || c.SocketMode == 0 {
		return DefaultSocketMode
	}
	return c.SocketMode
}

// Listener is a bound, passively open endpoint. It wraps either a TCP
// listener or a unix domain socket listener and produces Streams via
// Accept. The underlying OS handle is exclusively owned and released by
// Close.
type Listener struct {
	ln    net.Listener
	bound sockaddr.NamedAddr

	closed bool
	mu     sync.RWMutex
}

// Bind creates a listener for the given target: a TCP listener for an IP
// endpoint, a unix domain socket listener for a path. On platforms
// without unix domain sockets, path targets fail with ErrUnixUnsupported.
func Bind(ctx context.Context, addr sockaddr.NamedAddr) (*Listener, error) {
	var (
		ln  net.Listener
		err error
	)
	switch addr.Family {
	case sockaddr.FamilyIP:
		var lc net.ListenConfig
		ln, err = lc.Listen(ctx, "tcp", addr.IP.String())
	case sockaddr.FamilyUnix:
		ln, err = listenUnix(ctx, addr.Path)
	default:
		err = fmt.Errorf("unknown address family %v", addr.Family)
	}
	if err != nil {
		return nil, newOpError("bind", addr.String(), err)
	}
	return newListener(ln), nil
}

// BindAndPrepareUnix binds a unix domain socket listener at path after
// reclaiming it. Socket files are not cleaned up by the OS between
// process restarts; a stale file at the bind path makes a plain Bind
// fail with "address in use" even though no listener is live. The
// preparation removes an existing file first ("does not exist" is not an
// error, any other removal failure aborts the bind) and applies the
// configured permission mode to the socket file after binding.
//
// On platforms without unix domain sockets this fails with
// ErrUnixUnsupported.
func BindAndPrepareUnix(ctx context.Context, path string, config *ListenConfig) (*Listener, error) {
	ln, err := listenUnixPrepared(ctx, path, config.mode())
	if err != nil {
		return nil, newOpError("bind", path, err)
	}
	return newListener(ln), nil
}

// newListener wraps a bound net.Listener, recording the actual bound
// address (the kernel-assigned one, relevant when port 0 was requested).
func newListener(ln net.Listener) *Listener {
	var bound sockaddr.NamedAddr
	switch raw := ln.Addr().(type) {
	case *net.TCPAddr:
		bound = sockaddr.NamedIP(raw.AddrPort())
	case *net.UnixAddr:
		bound = sockaddr.NamedUnixPath(raw.Name)
	}

	logrus.WithFields(logrus.Fields{
		"function": "newListener",
		"network":  bound.Network(),
		"addr":     bound.String(),
	}).Info("Listener bound")

	return &Listener{ln: ln, bound: bound}
}

// Accept blocks until a new connection is ready and returns the Stream
// for it. The stream's socket has the listener's own bound address as
// local and the observed remote address as peer; for unix listeners the
// peer is classified at this boundary. A failed accept does not
// invalidate the listener.
func (l *Listener) Accept() (*Stream, error) {
	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return nil, newOpError("accept", l.bound.String(), ErrListenerClosed)
	}

	conn, err := l.ln.Accept()
	if err != nil {
		return nil, newOpError("accept", l.bound.String(), err)
	}

	socket := Socket{
		local: l.bound.Addr(),
		peer:  unifyRawAddr(conn.RemoteAddr()),
	}

	logrus.WithFields(logrus.Fields{
		"function": "Listener.Accept",
		"local":    socket.local.String(),
		"peer":     socket.peer.String(),
	}).Debug("Accepted connection")

	return &Stream{conn: conn, socket: socket}, nil
}

// Addr returns the listener's bound address as a target.
func (l *Listener) Addr() sockaddr.NamedAddr {
	return l.bound
}

// Close releases the underlying OS handle. Pending and subsequent
// Accept calls fail. Closing twice is harmless.
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "Listener.Close",
		"addr":     l.bound.String(),
	}).Info("Listener closed")

	return l.ln.Close()
}

// unifyRawAddr converts a runtime-reported connection address into the
// unified form. Unix addresses pass through sockaddr.ClassifyUnix, the
// single place their ambiguity is resolved.
func unifyRawAddr(raw net.Addr) sockaddr.Addr {
	switch a := raw.(type) {
	case *net.TCPAddr:
		return sockaddr.IP(a.AddrPort())
	case *net.UnixAddr:
		return sockaddr.Unix(sockaddr.ClassifyUnix(a))
	default:
		return sockaddr.Addr{}
	}
}
