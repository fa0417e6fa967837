package cmd

import (
	"fmt"

	"feature-catalog/core/catalog"
	"feature-catalog/core/config"
	"feature-catalog/core/database"
	"feature-catalog/core/loader"
	"feature-catalog/core/logger"
	"feature-catalog/core/storage"
	"feature-catalog/feature/bootstrap"
	"feature-catalog/feature/integrity"
	"feature-catalog/feature/modules"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment holds what every command builds from configuration.
type environment struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *catalog.Registry
	table    *loader.Table

	// db and client are nil when their backend is disabled or unreachable.
	db     *gorm.DB
	client storage.Client
}

// setup loads configuration, the logger, the catalogue and the module table,
// then connects the optional backends.
func setup() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	registry, err := cfg.Catalog.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	table, err := modules.Table()
	if err != nil {
		return nil, err
	}

	env := &environment{
		cfg:      cfg,
		logger:   logg,
		registry: registry,
		table:    table,
	}

	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			env.db = conn
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		env.client = client
	}

	return env, nil
}

// history returns a migrated history store, or nil without a database.
func (e *environment) history() *bootstrap.HistoryStore {
	if e.db == nil {
		return nil
	}
	store := bootstrap.NewHistoryStore(e.db)
	if err := store.Migrate(); err != nil {
		e.logger.Warn("Run history disabled", zap.Error(err))
		return nil
	}
	return store
}

func (e *environment) bootstrapService() *bootstrap.Service {
	ldr := loader.New(e.table, e.logger, e.cfg.Loader.Options())
	return bootstrap.NewService(e.registry, ldr, e.history(), e.client, e.cfg.Storage.Bucket, e.logger)
}

func (e *environment) integrityService() *integrity.Service {
	return integrity.NewService(e.registry, e.table, e.client, e.cfg.Storage.Bucket, e.cfg.Storage.Region, e.logger, e.db)
}
