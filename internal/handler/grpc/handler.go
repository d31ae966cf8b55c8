// Package grpc exposes the gRPC surface of the service: the standard health
// checking protocol backed by the storage ping, plus server reflection.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "swiftcodes.v1.SwiftCodes"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both health entries start as
// NOT_SERVING until the first probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register installs the health service and reflection on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, &healthServer{Server: h.health, handler: h})
	reflection.Register(s)
}

// Refresh probes the storage and publishes the result to the health service.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage ping failed, reporting NOT_SERVING")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown moves every entry to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// healthServer refreshes the storage status before answering Check. Watch
// and List are served by the embedded server.
type healthServer struct {
	*health.Server
	handler *Handler
}

func (s *healthServer) Check(ctx context.Context, in *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	s.handler.Refresh(ctx)
	return s.Server.Check(ctx, in)
}
