// Package sockaddr provides a unified address model over the two stream
// transports unisock supports: TCP and unix domain sockets.
//
// The hard part of treating the two interchangeably is not I/O, it is
// addressing. There are three distinct regimes: IP address plus port,
// filesystem path, and the abstract/unnamed unix namespace. The package
// represents those with three value types:
//
//   - UnixAddr: a unix socket address in one of three states — bound to
//     a filesystem path, bound to an abstract-namespace name, or the
//     collapsed abstract-or-unnamed state.
//   - Addr: any endpoint address actually observed on a live connection,
//     either an IP endpoint or a UnixAddr.
//   - NamedAddr: an address usable as a bind or connect target, either
//     an IP endpoint or a filesystem path. Never unnamed or abstract.
//
// # Classification
//
// The runtime's raw unix address can report "no pathname" and "not
// unnamed" at the same time. ClassifyUnix collapses that underspecified
// state into the single abstract-or-unnamed variant, once, at the
// boundary:
//
//	peer := sockaddr.ClassifyUnix(conn.RemoteAddr().(*net.UnixAddr))
//
// The tie-break is fixed: pathname first, then a retrievable abstract
// name, then the collapsed state. Two collapsed values always compare
// equal; they carry no distinguishing data.
//
// # Conversions
//
// NamedAddr.Addr is total. Addr.Named fails with ErrNotNameable for
// abstract or unnamed unix addresses, which cannot be expressed as a
// target. Both unions satisfy net.Addr and bridge to the runtime's
// concrete types via ToNetAddr.
//
// # String and JSON forms
//
// ParseNamedAddr accepts "host:port", "/path", "./path" and
// "unix:<path>"; NamedAddr.String renders a form that parses back.
// Addr, NamedAddr and UnixAddr all marshal to JSON and back to an equal
// value, with the collapsed state staying collapsed.
package sockaddr
