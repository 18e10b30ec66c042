package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/unisock/sockaddr"
)

// Stream is an actively opened connection endpoint. It wraps either a
// TCP connection or a unix domain socket connection and satisfies
// net.Conn; reads, writes and deadlines delegate to the wrapped
// connection.
type Stream struct {
	conn   net.Conn
	socket Socket
}

// Ensure Stream keeps the net.Conn contract.
var _ net.Conn = (*Stream)(nil)

// Connect opens a connection to the given target: TCP for an IP
// endpoint, unix domain socket for a path. It blocks until the
// connection completes, fails, or ctx is done.
//
// The resulting socket's peer is the target itself; its local address is
// the connecting side's own. A connecting unix socket is never bound to
// a name, so its local address is always the collapsed
// abstract-or-unnamed state.
func Connect(ctx context.Context, addr sockaddr.NamedAddr) (*Stream, error) {
	var (
		conn  net.Conn
		local sockaddr.Addr
		err   error
	)
	switch addr.Family {
	case sockaddr.FamilyIP:
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", addr.IP.String())
		if err == nil {
			local = unifyRawAddr(conn.LocalAddr())
		}
	case sockaddr.FamilyUnix:
		conn, err = dialUnix(ctx, addr.Path)
		local = sockaddr.Unix(sockaddr.UnixAbstractOrUnnamed())
	default:
		err = fmt.Errorf("unknown address family %v", addr.Family)
	}
	if err != nil {
		return nil, newOpError("connect", addr.String(), err)
	}

	socket := Socket{local: local, peer: addr.Addr()}

	logrus.WithFields(logrus.Fields{
		"function": "Connect",
		"local":    socket.local.String(),
		"peer":     socket.peer.String(),
	}).Debug("Connected")

	return &Stream{conn: conn, socket: socket}, nil
}

// Socket returns the address pair describing this connection.
func (s *Stream) Socket() Socket {
	return s.socket
}

// Read implements net.Conn.
func (s *Stream) Read(b []byte) (int, error) {
	return s.conn.Read(b)
}

// Write implements net.Conn.
func (s *Stream) Write(b []byte) (int, error) {
	return s.conn.Write(b)
}

// Close implements net.Conn.
func (s *Stream) Close() error {
	return s.conn.Close()
}

// LocalAddr implements net.Conn. The returned value is the unified
// sockaddr.Addr of this side.
func (s *Stream) LocalAddr() net.Addr {
	return s.socket.local
}

// RemoteAddr implements net.Conn. The returned value is the unified
// sockaddr.Addr of the remote side.
func (s *Stream) RemoteAddr() net.Addr {
	return s.socket.peer
}

// SetDeadline implements net.Conn.
func (s *Stream) SetDeadline(t time.Time) error {
	return s.conn.SetDeadline(t)
}

// SetReadDeadline implements net.Conn.
func (s *Stream) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

// SetWriteDeadline implements net.Conn.
func (s *Stream) SetWriteDeadline(t time.Time) error {
	return s.conn.SetWriteDeadline(t)
}
