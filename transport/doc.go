// Package transport lets a caller treat TCP sockets and unix domain
// sockets interchangeably through one Listener and one Stream type,
// keyed off the address model in package sockaddr.
//
// # Binding and connecting
//
// Both operations take a sockaddr.NamedAddr and dispatch on its family:
//
//	ln, err := transport.Bind(ctx, sockaddr.NamedIP(ap))      // TCP
//	ln, err := transport.Bind(ctx, sockaddr.NamedUnixPath(p)) // unix
//	st, err := transport.Connect(ctx, target)
//
// Unix socket files are not cleaned up by the OS between process
// restarts; a stale file at the bind path makes a plain Bind fail even
// though no listener is live. BindAndPrepareUnix reclaims the path
// first and applies a permission mode to the socket file after binding:
//
//	ln, err := transport.BindAndPrepareUnix(ctx, p, &transport.ListenConfig{
//	    SocketMode: 0o660,
//	})
//
// # Sockets
//
// Every successful accept or connect yields a Socket, the immutable
// local/peer address pair of the new connection. Raw runtime addresses
// are converted to unified sockaddr.Addr values at this boundary and
// nowhere else; on unix connects the local address is always the
// collapsed abstract-or-unnamed state, since a connecting unix socket
// is never bound to a name.
//
// # Concurrency and errors
//
// Accept and Connect are the two blocking points; both defer suspension
// and cancellation to the runtime's primitives (Connect honors ctx,
// Accept unblocks on Close). A failed Accept does not invalidate the
// listener. All failures come back as *OpError values carrying the
// operation, the address and the underlying error; nothing is retried
// or swallowed. On platforms without unix domain sockets every
// unix-specific operation fails with ErrUnixUnsupported.
package transport
