package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is done or a termination signal arrives,
	// then shuts down gracefully. A nil error means a clean shutdown.
	Run(ctx context.Context) error
}

// transport is a single listener based server run by [server].
type transport interface {
	name() string
	listen() (net.Addr, error)
	serve(ctx context.Context) error
	shutdown(ctx context.Context) error
}
