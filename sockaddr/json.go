package sockaddr

import (
	"encoding/json"
	"fmt"
	"net/netip"
)

// JSON forms. NamedAddr encodes as its string form, which round-trips
// through ParseNamedAddr. Addr and UnixAddr encode as small tagged
// objects because abstract name bytes have no string form; decoding an
// encoded value always reproduces an equal value. The collapsed
// abstract-or-unnamed state carries no data and stays collapsed across
// a round trip.

const (
	kindPathname          = "pathname"
	kindAbstract          = "abstract"
	kindAbstractOrUnnamed = "abstract-or-unnamed"
)

type unixAddrJSON struct {
	Kind string `json:"kind"`
	Path string `json:"path,omitempty"`
	Name []byte `json:"name,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (a UnixAddr) MarshalJSON() ([]byte, error) {
	out := unixAddrJSON{Kind: kindAbstractOrUnnamed}
	switch a.kind {
	case unixPathname:
		out.Kind = kindPathname
		out.Path = a.path
	case unixAbstract:
		out.Kind = kindAbstract
		out.Name = a.name
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *UnixAddr) UnmarshalJSON(data []byte) error {
	var in unixAddrJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case kindPathname:
		*a = UnixPathname(in.Path)
	case kindAbstract:
		*a = UnixAbstract(in.Name)
	case kindAbstractOrUnnamed:
		*a = UnixAddr{}
	default:
		return fmt.Errorf("unknown unix address kind %q", in.Kind)
	}
	return nil
}

type addrJSON struct {
	Family string    `json:"family"`
	IP     string    `json:"ip,omitempty"`
	Unix   *UnixAddr `json:"unix,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (a Addr) MarshalJSON() ([]byte, error) {
	if a.Family == FamilyUnix {
		unix := a.Unix
		return json.Marshal(addrJSON{Family: "unix", Unix: &unix})
	}
	return json.Marshal(addrJSON{Family: "ip", IP: a.IP.String()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Addr) UnmarshalJSON(data []byte) error {
	var in addrJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Family {
	case "ip":
		ap, err := netip.ParseAddrPort(in.IP)
		if err != nil {
			return err
		}
		*a = IP(ap)
	case "unix":
		var unix UnixAddr
		if in.Unix != nil {
			unix = *in.Unix
		}
		*a = Unix(unix)
	default:
		return fmt.Errorf("unknown address family %q", in.Family)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NamedAddr) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NamedAddr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	named, err := ParseNamedAddr(s)
	if err != nil {
		return err
	}
	*n = named
	return nil
}
