package sockaddr

import (
	"net/netip"
	"strings"
)

// IsPathname reports whether a string address denotes a unix socket file
// path rather than an IP endpoint. A path starts with '/' or '.'.
func IsPathname(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, ".")
}

// ParseNamedAddr parses a string form into a bind/connect target.
// Accepted forms:
//
//	"host:port"         IP endpoint
//	"/path" or "./path" unix socket file path
//	"unix:<path>"       unix socket file path, explicit scheme
//
// The explicit scheme admits relative paths that would otherwise not be
// recognizable as paths, and is what NamedAddr.String renders.
func ParseNamedAddr(s string) (NamedAddr, error) {
	if path, ok := strings.CutPrefix(s, "unix:"); ok {
		return NamedUnixPath(path), nil
	}
	if IsPathname(s) {
		return NamedUnixPath(s), nil
	}
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return NamedAddr{}, err
	}
	return NamedIP(ap), nil
}

// ParseAddr parses the same string forms as ParseNamedAddr into the
// general Addr form. Abstract and unnamed unix addresses have no parsed
// form; they only arise from observing live connections.
func ParseAddr(s string) (Addr, error) {
	named, err := ParseNamedAddr(s)
	if err != nil {
		return Addr{}, err
	}
	return named.Addr(), nil
}
