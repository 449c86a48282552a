package convert

import (
	"match-canon/core/storage"
	"match-canon/feature/canon"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new conversion feature.
func NewFeature(client storage.Client, bucket string, cfg Config, resolver canon.Resolver, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, cfg, resolver, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "convert"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's conversion service.
func (f *Feature) Service() *Service {
	return f.service
}
