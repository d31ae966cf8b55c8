package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	myGRPC "github.com/MKhiriev/go-swift-codes/internal/handler/grpc"
	"github.com/MKhiriev/go-swift-codes/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address  string
	server   *grpc.Server
	listener net.Listener

	refreshInterval time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		address:         cfg.GRPCAddress,
		server:          server,
		refreshInterval: healthRefreshInterval,
		logger:          logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) listen() (net.Addr, error) {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", errListen, g.address, err)
	}
	g.listener = lis
	return lis.Addr(), nil
}

// serve runs the gRPC server and keeps the health status of Watch
// subscribers current until ctx is done.
func (g *grpcServer) serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(g.refreshInterval)
		defer ticker.Stop()

		g.handler.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				g.handler.Refresh(ctx)
			}
		}
	}()

	if err := g.server.Serve(g.listener); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown stops gracefully, forcing the stop once ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
