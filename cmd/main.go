package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizapi/config"
	"github.com/lshigami/quizapi/database"
	"github.com/lshigami/quizapi/internal/controller"
	adminctrl "github.com/lshigami/quizapi/internal/controller/admin"
	userctrl "github.com/lshigami/quizapi/internal/controller/user"
	"github.com/lshigami/quizapi/internal/logger"
	"github.com/lshigami/quizapi/internal/repository"
	"github.com/lshigami/quizapi/internal/router"
	"github.com/lshigami/quizapi/internal/server"
	"github.com/lshigami/quizapi/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz API
// @version 1.0
// @description Author quizzes with multiple-choice and free-text questions, take them, and get a score.
// @host localhost:4000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminQuizService,
			service.NewUserQuizService,
			service.NewScoreConverterService,
			service.NewQuizSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuizController,
			userctrl.NewUserQuizController,
			controller.NewHealthController,
		),

		// Migrations run before the server starts taking requests.
		fx.Invoke(ConfigureLogger),
		fx.Invoke(MigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stopped with error")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
	if cfg.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN is not set, quiz create and delete are open to anyone")
	}
}

func MigrateDB(db *gorm.DB, cfg *config.Config) error {
	log.Info().Str("driver", cfg.Database.Driver).Msg("Running database migrations...")
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	return nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	engine *gin.Engine,
	cfg *config.Config,
	adminQuizCtrl *adminctrl.AdminQuizController,
	userQuizCtrl *userctrl.UserQuizController,
	healthCtrl *controller.HealthController,
) {
	router.RegisterRoutes(engine, cfg, adminQuizCtrl, userQuizCtrl, healthCtrl)

	srv := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := server.Listen(cfg.Server.Host, cfg.Server.Port, cfg.Server.PortRetries)
			if err != nil {
				return fmt.Errorf("start http server: %w", err)
			}
			port := server.Port(ln)
			log.Info().Msgf("Quiz API server listening on %s", ln.Addr())
			log.Info().Msgf("Swagger UI available at http://localhost:%d/swagger/index.html", port)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
