package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"match-canon/core/config"
	"match-canon/core/loader"
	"match-canon/core/logger"
	"match-canon/core/middleware/auth"
	"match-canon/core/middleware/rayid"
	"match-canon/core/storage"

	"match-canon/feature/convert"
	"match-canon/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "match-canon/docs/swagger"
)

// @title Match Canon API
// @version 1.0
// @description API for converting mahjong match logs into canonical records.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the conversion server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Player resolver (file or database)
		db, err := connectPlayersDB(cfg)
		if err != nil {
			logg.Fatal("Failed to connect to players database", zap.Error(err))
		}
		resolver, err := openResolver(cfg, db, logg)
		if err != nil {
			logg.Fatal("Failed to initialize player resolver", zap.Error(err))
		}
		logg.Info("Player resolver ready", zap.String("source", cfg.Convert.PlayersSource))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket); err != nil {
			logg.Warn("Bucket unavailable, stored conversions will fail", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(convert.NewFeature(store, cfg.Storage.Bucket, cfg.Convert, resolver, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Convert, db, logg))

		// RayID must be first to trace everything
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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
