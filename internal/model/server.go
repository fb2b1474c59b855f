package model

import (
	"context"
	"net"
)

// Server is a startable network server.
type Server interface {
	Start(sl SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// SecurityLayer produces a plain or TLS listener for a server.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}
