package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/vetcare/clinic-service/internal/api/http"
	"github.com/vetcare/clinic-service/internal/api/http/handlers"
	"github.com/vetcare/clinic-service/internal/auth"
	"github.com/vetcare/clinic-service/internal/cache"
	"github.com/vetcare/clinic-service/internal/config"
	"github.com/vetcare/clinic-service/internal/observability"
	"github.com/vetcare/clinic-service/internal/persistence"
	"github.com/vetcare/clinic-service/internal/repository"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the fallback signing secret; do not deploy like this")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	examRepo := repository.NewExamRepository(pool)

	catalog := cache.NewCatalogCache(redis, logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	portalService := service.NewPortalService(service.PortalDependencies{
		Users:        userRepo,
		Patients:     patientRepo,
		Services:     serviceRepo,
		Appointments: appointmentRepo,
		Payments:     paymentRepo,
		Exams:        examRepo,
		Catalog:      catalog,
	})

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	validate := validation.New()
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.IsDevelopment())

	rateLimiter := httptransport.NewRateLimiter(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:             handlers.NewHealthHandler(pg, redis),
		Auth:               handlers.NewAuthHandler(authService, validate),
		AdminUsers:         handlers.NewAdminUsersHandler(userRepo, validate),
		AdminPatients:      handlers.NewAdminPatientsHandler(patientRepo, validate),
		AdminServices:      handlers.NewAdminServicesHandler(serviceRepo, catalog, validate),
		AdminAppointments:  handlers.NewAdminAppointmentsHandler(appointmentRepo, validate),
		AdminPayments:      handlers.NewAdminPaymentsHandler(paymentRepo, validate),
		ClientPortal:       handlers.NewClientPortalHandler(portalService),
		ClientPets:         handlers.NewClientPetsHandler(portalService, validate),
		ClientAppointments: handlers.NewClientAppointmentsHandler(portalService, validate),
		ClientExams:        handlers.NewClientExamsHandler(portalService, validate),
		ClientProfile:      handlers.NewClientProfileHandler(portalService, validate),
		AuthMiddleware:     authMiddleware,
		RateLimiter:        rateLimiter,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
