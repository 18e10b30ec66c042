package transport

import (
	"fmt"

	"github.com/opd-ai/unisock/sockaddr"
)

// Socket is the pair of addresses describing one established connection.
// Every successful accept or connect produces one. It is immutable; the
// connection's data transfer happens on the Stream that carries it.
type Socket struct {
	local sockaddr.Addr
	peer  sockaddr.Addr
}

// LocalAddr returns the address of this side of the connection.
func (s Socket) LocalAddr() sockaddr.Addr {
	return s.local
}

// PeerAddr returns the address of the remote side of the connection.
func (s Socket) PeerAddr() sockaddr.Addr {
	return s.peer
}

func (s Socket) String() string {
	return fmt.Sprintf("%s -> %s", s.local, s.peer)
}
