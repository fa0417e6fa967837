package integrity

import (
	"context"
	"errors"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"
	"feature-catalog/core/storage"
	"feature-catalog/feature/bootstrap/models"
	"feature-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageDisabled is returned by storage checks without a storage client.
	ErrStorageDisabled = errors.New("storage is disabled")
	// ErrDatabaseDisabled is returned by server checks without a database.
	ErrDatabaseDisabled = errors.New("database is disabled")
)

// StorageReport is the result of the storage structure check.
type StorageReport struct {
	Status  string   `json:"status"` // "checked", "fixed"
	Bucket  string   `json:"bucket"`
	Missing []string `json:"missing"`
	Fixed   []string `json:"fixed,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	registry *catalog.Registry
	table    *loader.Table
	client   storage.Client
	bucket   string
	region   string
	logger   *zap.Logger
	db       *gorm.DB
}

// NewService creates a new integrity service. client and db may be nil.
func NewService(registry *catalog.Registry, table *loader.Table, client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		registry: registry,
		table:    table,
		client:   client,
		bucket:   bucket,
		region:   region,
		logger:   logger,
		db:       db,
	}
}

// CheckCatalog validates the catalogue and its module coverage.
func (s *Service) CheckCatalog() *checks.CatalogReport {
	return checks.CheckCatalog(s.registry, s.table)
}

// CheckStorage checks the bucket folders and optionally creates what is missing.
func (s *Service) CheckStorage(ctx context.Context, fix bool) (*StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	if fix {
		if err := checks.EnsureBucket(ctx, s.client, s.bucket, s.region, s.logger); err != nil {
			return nil, err
		}
	}

	missing, err := checks.CheckStructure(ctx, s.client, s.bucket)
	if err != nil {
		return nil, err
	}
	report := &StorageReport{Status: "checked", Bucket: s.bucket, Missing: missing}
	if missing == nil {
		report.Missing = []string{}
	}

	if len(missing) > 0 {
		s.logger.Warn("Missing folders detected", zap.Strings("missing", missing))
		if fix {
			if err := checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing); err != nil {
				return report, err
			}
			report.Status = "fixed"
			report.Fixed = missing
		}
	}
	return report, nil
}

// CheckServer verifies the run history schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseDisabled
	}
	return checks.CheckServerIntegrity(s.db, models.ExpectedColumns)
}
