package workers

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/models"
)

// SeedWorker imports a SWIFT codes CSV file into the store at startup.
type SeedWorker struct {
	importer     service.ImportService
	path         string
	dropExisting bool

	logger *logger.Logger
}

func NewSeedWorker(importer service.ImportService, cfg config.Workers, logger *logger.Logger) *SeedWorker {
	return &SeedWorker{
		importer:     importer,
		path:         cfg.SeedCSVPath,
		dropExisting: cfg.SeedDropExisting,
		logger:       logger,
	}
}

func (s *SeedWorker) Run(ctx context.Context) error {
	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("seed: open %s: %w", s.path, err)
	}
	defer file.Close()

	s.logger.Info().Str("path", s.path).Bool("drop_existing", s.dropExisting).Msg("seeding SWIFT codes")

	summary, err := s.importer.Import(ctx, file, models.ImportOptions{DropExisting: s.dropExisting})
	if err != nil {
		return fmt.Errorf("seed: import %s: %w", s.path, err)
	}

	s.logger.Info().
		Int("countries", summary.Countries).
		Int("headquarters", summary.Headquarters).
		Int("branches", summary.Branches).
		Int("orphan_branches", summary.OrphanBranches).
		Int("skipped_rows", summary.SkippedRows).
		Msg("seeding finished")

	return nil
}
