package sockaddr

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// ErrNotNameable indicates an Addr that cannot be expressed as a bind or
// connect target: a unix address that is abstract or unnamed.
var ErrNotNameable = errors.New("address is not nameable")

// Family identifies the address family of an Addr or NamedAddr.
type Family uint8

const (
	// FamilyIP is an IP address and port, usable over TCP.
	FamilyIP Family = 0x01
	// FamilyUnix is a unix domain socket address.
	FamilyUnix Family = 0x02
)

// String returns a human-readable representation of the Family.
func (f Family) String() string {
	switch f {
	case FamilyIP:
		return "ip"
	case FamilyUnix:
		return "unix"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Addr is the address of an established endpoint, local or peer. It is
// either an IP address and port or a UnixAddr in any of its three states.
// Unlike NamedAddr, an Addr is not guaranteed to be usable as a bind or
// connect target.
type Addr struct {
	// Family discriminates which of the following fields is set.
	Family Family
	// IP is the endpoint address and port, set when Family is FamilyIP.
	IP netip.AddrPort
	// Unix is the unix socket address, set when Family is FamilyUnix.
	Unix UnixAddr
}

// NamedAddr is an address usable as a bind or connect target: an IP
// address and port, or a unix socket filesystem path. There is no
// unnamed or abstract variant; every NamedAddr is nameable by
// construction.
type NamedAddr struct {
	// Family discriminates which of the following fields is set.
	Family Family
	// IP is the endpoint address and port, set when Family is FamilyIP.
	IP netip.AddrPort
	// Path is the socket file path, set when Family is FamilyUnix.
	Path string
}

// IP returns an Addr for an IP endpoint.
func IP(ap netip.AddrPort) Addr {
	return Addr{Family: FamilyIP, IP: ap}
}

// Unix returns an Addr for a unix socket endpoint.
func Unix(ua UnixAddr) Addr {
	return Addr{Family: FamilyUnix, Unix: ua}
}

// NamedIP returns a NamedAddr for an IP endpoint.
func NamedIP(ap netip.AddrPort) NamedAddr {
	return NamedAddr{Family: FamilyIP, IP: ap}
}

// NamedUnixPath returns a NamedAddr for a unix socket file path.
func NamedUnixPath(path string) NamedAddr {
	return NamedAddr{Family: FamilyUnix, Path: path}
}

// Addr converts a NamedAddr to the general Addr form. The conversion is
// total: a path target becomes a pathname unix address.
func (n NamedAddr) Addr() Addr {
	switch n.Family {
	case FamilyUnix:
		return Unix(UnixPathname(n.Path))
	default:
		return IP(n.IP)
	}
}

// Named converts an Addr into a bind/connect target. It fails with
// ErrNotNameable for unix addresses that are abstract or unnamed, since
// those cannot be expressed as a target.
func (a Addr) Named() (NamedAddr, error) {
	switch a.Family {
	case FamilyUnix:
		path, ok := a.Unix.Pathname()
		if !ok {
			return NamedAddr{}, fmt.Errorf("%w: %s", ErrNotNameable, a.Unix)
		}
		return NamedUnixPath(path), nil
	default:
		return NamedIP(a.IP), nil
	}
}

// Equal reports whether two addresses are the same endpoint address.
func (a Addr) Equal(other Addr) bool {
	if a.Family != other.Family {
		return false
	}
	if a.Family == FamilyUnix {
		return a.Unix.Equal(other.Unix)
	}
	return a.IP == other.IP
}

// Equal reports whether two named addresses are the same target.
func (n NamedAddr) Equal(other NamedAddr) bool {
	if n.Family != other.Family {
		return false
	}
	if n.Family == FamilyUnix {
		return n.Path == other.Path
	}
	return n.IP == other.IP
}

// MapIP applies mapper to the IP endpoint, leaving unix addresses
// untouched.
func (a Addr) MapIP(mapper func(netip.AddrPort) netip.AddrPort) Addr {
	if a.Family == FamilyIP {
		a.IP = mapper(a.IP)
	}
	return a
}

// MapUnix applies mapper to the unix address, leaving IP endpoints
// untouched.
func (a Addr) MapUnix(mapper func(UnixAddr) UnixAddr) Addr {
	if a.Family == FamilyUnix {
		a.Unix = mapper(a.Unix)
	}
	return a
}

// MapIP applies mapper to the IP endpoint, leaving path targets
// untouched.
func (n NamedAddr) MapIP(mapper func(netip.AddrPort) netip.AddrPort) NamedAddr {
	if n.Family == FamilyIP {
		n.IP = mapper(n.IP)
	}
	return n
}

// MapPath applies mapper to the socket file path, leaving IP endpoints
// untouched.
func (n NamedAddr) MapPath(mapper func(string) string) NamedAddr {
	if n.Family == FamilyUnix {
		n.Path = mapper(n.Path)
	}
	return n
}

// Network returns "tcp" for IP endpoints and "unix" for unix addresses.
// Part of the net.Addr contract.
func (a Addr) Network() string {
	if a.Family == FamilyUnix {
		return "unix"
	}
	return "tcp"
}

// String implements net.Addr.
func (a Addr) String() string {
	if a.Family == FamilyUnix {
		return a.Unix.String()
	}
	return a.IP.String()
}

// Network returns "tcp" for IP endpoints and "unix" for path targets.
// Part of the net.Addr contract.
func (n NamedAddr) Network() string {
	if n.Family == FamilyUnix {
		return "unix"
	}
	return "tcp"
}

// String implements net.Addr. The rendered form parses back with
// ParseNamedAddr.
func (n NamedAddr) String() string {
	if n.Family == FamilyUnix {
		return "unix:" + n.Path
	}
	return n.IP.String()
}

// ToNetAddr converts the Addr to the runtime's concrete address types:
// *net.TCPAddr for IP endpoints, *net.UnixAddr otherwise.
func (a Addr) ToNetAddr() net.Addr {
	if a.Family == FamilyUnix {
		return a.Unix.ToNetAddr()
	}
	return net.TCPAddrFromAddrPort(a.IP)
}

// ToNetAddr converts the NamedAddr to the runtime's concrete address
// types: *net.TCPAddr for IP endpoints, *net.UnixAddr otherwise.
func (n NamedAddr) ToNetAddr() net.Addr {
	if n.Family == FamilyUnix {
		return &net.UnixAddr{Net: "unix", Name: n.Path}
	}
	return net.TCPAddrFromAddrPort(n.IP)
}
