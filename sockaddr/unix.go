package sockaddr

import (
	"bytes"
	"net"
	"strings"
)

// unixKind discriminates the three states a unix domain socket address
// can be observed in.
type unixKind uint8

const (
	// unixAbstractOrUnnamed is the zero value on purpose: a UnixAddr
	// about which nothing is known is the collapsed state.
	unixAbstractOrUnnamed unixKind = iota
	unixPathname
	unixAbstract
)

// UnixAddr represents the address of a unix domain socket endpoint.
//
// A unix socket address is observed in one of three states: bound to a
// filesystem path, bound to a name in the abstract namespace, or neither.
// The kernel-facing APIs can report "no pathname" and "not unnamed" at
// the same time, so the third state deliberately merges "truly unnamed"
// with "abstract but not distinguishable from unnamed". That merge is
// performed once, in ClassifyUnix, and never re-derived by consumers.
//
// The zero value is the abstract-or-unnamed state.
type UnixAddr struct {
	kind unixKind
	path string
	name []byte
}

// UnixPathname returns a UnixAddr for a socket bound to a filesystem path.
func UnixPathname(path string) UnixAddr {
	return UnixAddr{kind: unixPathname, path: path}
}

// UnixAbstract returns a UnixAddr for a socket bound to a name in the
// abstract namespace. An empty name carries no distinguishing data and
// collapses to the abstract-or-unnamed state.
func UnixAbstract(name []byte) UnixAddr {
	if len(name) == 0 {
		return UnixAddr{}
	}
	return UnixAddr{kind: unixAbstract, name: bytes.Clone(name)}
}

// UnixAbstractOrUnnamed returns the collapsed address state: provably
// neither a pathname nor a retrievable abstract name.
func UnixAbstractOrUnnamed() UnixAddr {
	return UnixAddr{}
}

// ClassifyUnix interprets a raw unix address as reported by the runtime.
// Pathname takes priority, then a retrievable abstract name, then the
// collapsed abstract-or-unnamed state. This is the only place the raw
// form is interpreted; no other variant is ever produced.
//
// The runtime renders abstract names with a leading '@' and unnamed
// addresses as the empty string.
func ClassifyUnix(raw *net.UnixAddr) UnixAddr {
	if raw == nil || raw.Name == "" {
		return UnixAddr{}
	}
	if strings.HasPrefix(raw.Name, "@") {
		return UnixAbstract([]byte(raw.Name[1:]))
	}
	return UnixPathname(raw.Name)
}

// Pathname returns the filesystem path and true if the address is a
// pathname address.
func (a UnixAddr) Pathname() (string, bool) {
	return a.path, a.kind == unixPathname
}

// AbstractName returns the abstract namespace name and true if the
// address is a retrievable abstract name.
func (a UnixAddr) AbstractName() ([]byte, bool) {
	if a.kind != unixAbstract {
		return nil, false
	}
	return bytes.Clone(a.name), true
}

// IsAbstractOrUnnamed reports whether the address is the collapsed state.
func (a UnixAddr) IsAbstractOrUnnamed() bool {
	return a.kind == unixAbstractOrUnnamed
}

// Equal reports whether two unix addresses are the same. All collapsed
// abstract-or-unnamed addresses compare equal regardless of origin: they
// carry no distinguishing data, and that is intentional.
func (a UnixAddr) Equal(other UnixAddr) bool {
	if a.kind != other.kind {
		return false
	}
	switch a.kind {
	case unixPathname:
		return a.path == other.path
	case unixAbstract:
		return bytes.Equal(a.name, other.name)
	default:
		return true
	}
}

// Network returns "unix". Part of the net.Addr contract.
func (a UnixAddr) Network() string {
	return "unix"
}

// String renders the address as "unix:<path>", "unix:@<name>" or the
// bare "unix:" for the collapsed state.
func (a UnixAddr) String() string {
	switch a.kind {
	case unixPathname:
		return "unix:" + a.path
	case unixAbstract:
		return "unix:@" + string(a.name)
	default:
		return "unix:"
	}
}

// ToNetAddr converts back to the runtime's raw address form.
func (a UnixAddr) ToNetAddr() net.Addr {
	switch a.kind {
	case unixPathname:
		return &net.UnixAddr{Net: "unix", Name: a.path}
	case unixAbstract:
		return &net.UnixAddr{Net: "unix", Name: "@" + string(a.name)}
	default:
		return &net.UnixAddr{Net: "unix"}
	}
}
