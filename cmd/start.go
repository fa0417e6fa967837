package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feature-catalog/core/catalog"
	"feature-catalog/core/loader"
	"feature-catalog/core/logger"
	"feature-catalog/core/middleware/auth"
	"feature-catalog/core/middleware/rayid"
	"feature-catalog/feature/bootstrap"
	featurecatalog "feature-catalog/feature/catalog"
	"feature-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "feature-catalog/docs/swagger"
)

// @title Feature Catalogue API
// @version 1.0
// @description API for browsing the feature catalogue and its module loading runs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the feature catalogue server",
	Long:  `Loads every catalogue module, then starts the HTTP server with all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		logg := env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Module failures are logged by the loader and never stop the server.
		boot := env.bootstrapService()
		boot.Run(cmd.Context(), catalog.Filter{})

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(featurecatalog.NewFeature(env.registry, env.client, env.cfg.Storage.Bucket, logg))
		mgr.Register(bootstrap.NewFeature(boot))
		mgr.Register(integrity.NewFeature(env.integrityService()))

		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if env.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey, Skip: []string{"/swagger"}}))
		} else {
			logg.Warn("API key not set, requests are not authenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", env.cfg.Server.Port),
				zap.Strings("features", mgr.Names()))
			errCh <- app.Listen(env.cfg.Server.Addr())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sig:
		}

		logg.Info("Shutting down server...")
		timeout := time.Duration(env.cfg.Server.ShutdownTimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return app.ShutdownWithContext(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
