package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
)

type healthService struct {
	storage Pinger

	logger *logger.Logger
}

func NewHealthService(storage Pinger, logger *logger.Logger) HealthService {
	return &healthService{storage: storage, logger: logger}
}

// Check pings the storage backend.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage is unreachable")
		return fmt.Errorf("storage ping: %w", err)
	}
	return nil
}
