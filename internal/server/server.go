package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/handler"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout      = 10 * time.Second
	healthRefreshInterval  = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type server struct {
	transports      []transport
	shutdownTimeout time.Duration

	// ready is closed once every transport is listening.
	ready chan struct{}
	addrs map[string]string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan struct{}),
		addrs:           make(map[string]string),
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// Run listens on every configured address and serves until ctx is done or
// SIGTERM, SIGINT or SIGQUIT arrives. If any transport fails the others are
// shut down too and the first error is returned.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	for _, t := range s.transports {
		addr, err := t.listen()
		if err != nil {
			return errors.Join(err, s.closeListeners())
		}
		s.addrs[t.name()] = addr.String()
		s.logger.Info().Str("address", addr.String()).Msgf("launching %s server", t.name())
	}
	close(s.ready)

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range s.transports {
		g.Go(func() error {
			return t.serve(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range s.transports {
			errs = append(errs, t.shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// closeListeners releases listeners opened before a failed listen.
func (s *server) closeListeners() error {
	var errs []error
	for _, t := range s.transports {
		switch srv := t.(type) {
		case *httpServer:
			if srv.listener != nil {
				errs = append(errs, srv.listener.Close())
			}
		case *grpcServer:
			if srv.listener != nil {
				errs = append(errs, srv.listener.Close())
			}
		}
	}
	return errors.Join(errs...)
}
