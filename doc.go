// Package unisock unifies TCP sockets and unix domain sockets behind one
// set of listener, stream and address types.
//
// The underlying byte-level socket work is the standard library's; what
// this module adds is the address model. Three addressing regimes exist
// (IP plus port, filesystem path, and the abstract/unnamed unix
// namespace) and package sockaddr represents them losslessly, with
// total and checked conversions between "observed endpoint" and
// "bind/connect target" forms. Package transport builds the uniform
// Listener and Stream on top of that model.
//
// This package is the string-form entry point:
//
//	ln, err := unisock.Listen("127.0.0.1:8080") // TCP
//	ln, err := unisock.Listen("/run/app.sock")  // unix domain socket
//	st, err := unisock.Dial("192.0.2.1:8080")
//
// Callers that already hold typed addresses use the transport package
// directly.
package unisock
