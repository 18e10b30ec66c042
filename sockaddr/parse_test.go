package sockaddr

import (
	"net/netip"
	"testing"
)

func TestParseNamedAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NamedAddr
		wantErr bool
	}{
		{
			name:  "ipv4 endpoint",
			input: "192.0.2.1:8080",
			want:  NamedIP(netip.MustParseAddrPort("192.0.2.1:8080")),
		},
		{
			name:  "ipv6 endpoint",
			input: "[2001:db8::1]:443",
			want:  NamedIP(netip.MustParseAddrPort("[2001:db8::1]:443")),
		},
		{
			name:  "absolute path",
			input: "/run/app.sock",
			want:  NamedUnixPath("/run/app.sock"),
		},
		{
			name:  "relative path",
			input: "./app.sock",
			want:  NamedUnixPath("./app.sock"),
		},
		{
			name:  "explicit unix scheme",
			input: "unix:/run/app.sock",
			want:  NamedUnixPath("/run/app.sock"),
		},
		{
			name:  "explicit unix scheme with bare name",
			input: "unix:app.sock",
			want:  NamedUnixPath("app.sock"),
		},
		{
			name:    "hostname is not an endpoint",
			input:   "localhost:80",
			wantErr: true,
		},
		{
			name:    "missing port",
			input:   "192.0.2.1",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNamedAddr(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseNamedAddr(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNamedAddr(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseNamedAddr(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseNamedAddrStringRoundTrip checks that the rendered form of any
// NamedAddr parses back to an equal value.
func TestParseNamedAddrStringRoundTrip(t *testing.T) {
	for _, named := range []NamedAddr{
		NamedIP(netip.MustParseAddrPort("192.0.2.1:8080")),
		NamedIP(netip.MustParseAddrPort("[2001:db8::1]:443")),
		NamedUnixPath("/run/app.sock"),
		NamedUnixPath("./app.sock"),
		NamedUnixPath("app.sock"),
	} {
		back, err := ParseNamedAddr(named.String())
		if err != nil {
			t.Fatalf("ParseNamedAddr(%q) failed: %v", named.String(), err)
		}
		if !back.Equal(named) {
			t.Errorf("round trip of %q = %v", named.String(), back)
		}
	}
}

func TestParseAddr(t *testing.T) {
	addr, err := ParseAddr("/run/app.sock")
	if err != nil {
		t.Fatalf("ParseAddr failed: %v", err)
	}
	if !addr.Equal(Unix(UnixPathname("/run/app.sock"))) {
		t.Errorf("ParseAddr = %v", addr)
	}

	if _, err := ParseAddr("not an address"); err == nil {
		t.Error("ParseAddr accepted garbage")
	}
}

func TestIsPathname(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"/run/app.sock", true},
		{"./app.sock", true},
		{".hidden", true},
		{"192.0.2.1:80", false},
		{"app.sock", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPathname(tt.input); got != tt.want {
			t.Errorf("IsPathname(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
