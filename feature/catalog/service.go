package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogcore "feature-catalog/core/catalog"
	"feature-catalog/core/storage"

	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by Export when no storage client is configured.
var ErrStorageDisabled = errors.New("storage is disabled")

const (
	// ExportJSONKey is the object key of the JSON export.
	ExportJSONKey = "catalog/catalog.json"
	// ExportYAMLKey is the object key of the YAML export.
	ExportYAMLKey = "catalog/catalog.yaml"
)

// ExportResult describes an uploaded catalogue.
type ExportResult struct {
	Bucket   string   `json:"bucket"`
	Objects  []string `json:"objects"`
	Features int      `json:"features"`
}

// Service provides read access to the registry and its export.
type Service struct {
	registry *catalogcore.Registry
	client   storage.Client
	bucket   string
	logger   *zap.Logger
}

// NewService creates a catalogue service. client may be nil.
func NewService(registry *catalogcore.Registry, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		client:   client,
		bucket:   bucket,
		logger:   logger,
	}
}

// Export uploads the catalogue as JSON and YAML.
func (s *Service) Export(ctx context.Context) (*ExportResult, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	if err := storage.PutJSON(ctx, s.client, s.bucket, ExportJSONKey, s.registry.Groups()); err != nil {
		return nil, err
	}

	data, err := s.registry.EncodeYAML()
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalogue: %w", err)
	}
	if err := storage.PutBytes(ctx, s.client, s.bucket, ExportYAMLKey, "application/yaml", data); err != nil {
		return nil, err
	}

	s.logger.Info("Catalogue exported",
		zap.String("bucket", s.bucket),
		zap.Int("features", s.registry.Len()))

	return &ExportResult{
		Bucket:   s.bucket,
		Objects:  []string{ExportJSONKey, ExportYAMLKey},
		Features: s.registry.Len(),
	}, nil
}
