package integrity

import (
	"context"

	"match-canon/core/storage"
	"match-canon/feature/convert"
	"match-canon/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	cfg    convert.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when players come from a file.
func NewService(client storage.Client, bucket string, cfg convert.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the missing folders of the conversion layout.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.cfg))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckOutputs compares stored raw logs with canonical records.
func (s *Service) CheckOutputs(ctx context.Context) (*checks.OutputReport, error) {
	return checks.CheckOutputs(ctx, s.client, s.bucket, s.cfg)
}

// CheckPlayers verifies the players source.
func (s *Service) CheckPlayers(ctx context.Context) (*checks.PlayersReport, error) {
	return checks.CheckPlayers(ctx, s.db, s.cfg)
}
