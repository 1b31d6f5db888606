package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furnishing-helper/core/loader"
	"furnishing-helper/core/logger"
	"furnishing-helper/core/middleware/auth"
	"furnishing-helper/core/middleware/rayid"
	"furnishing-helper/feature/account"
	"furnishing-helper/feature/catalog"
	"furnishing-helper/feature/integrity"
	"furnishing-helper/feature/inventory"
	"furnishing-helper/feature/requirements"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "furnishing-helper/docs/swagger"
)

// @title Furnishing Helper API
// @version 1.0
// @description Tracks owned characters and claimed gift sets, and computes the furnishings and materials still needed.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the furnishing helper server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()
		zap.ReplaceGlobals(svc.logger)
		logg := svc.logger

		if !svc.cfg.Server.HasSecret() {
			logg.Warn("SERVER_JWT_SECRET is not set: account routes are disabled and every protected route answers 401")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(account.NewFeature(svc.account))
		mgr.Register(catalog.NewFeature(svc.catalog))
		mgr.Register(inventory.NewFeature(svc.inventory))
		mgr.Register(requirements.NewFeature(svc.requirements))
		mgr.Register(integrity.NewFeature(svc.integrity))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			Secret:         svc.cfg.Server.JWTSecret,
			PublicPrefixes: []string{"/swagger", "/account"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		for _, f := range mgr.Features() {
			logg.Debug("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", svc.cfg.Server.Port))
			if err := app.Listen(":" + svc.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
