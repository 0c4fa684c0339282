package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/http/handlers"
	"github.com/vetcare/clinic-service/internal/auth"
	"github.com/vetcare/clinic-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health             *handlers.HealthHandler
	Auth               *handlers.AuthHandler
	AdminUsers         *handlers.AdminUsersHandler
	AdminPatients      *handlers.AdminPatientsHandler
	AdminServices      *handlers.AdminServicesHandler
	AdminAppointments  *handlers.AdminAppointmentsHandler
	AdminPayments      *handlers.AdminPaymentsHandler
	ClientPortal       *handlers.ClientPortalHandler
	ClientPets         *handlers.ClientPetsHandler
	ClientAppointments *handlers.ClientAppointmentsHandler
	ClientExams        *handlers.ClientExamsHandler
	ClientProfile      *handlers.ClientProfileHandler
	AuthMiddleware     *auth.Middleware
	RateLimiter        *RateLimiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth", cfg.RateLimiter.Handle)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/usuarios", cfg.AdminUsers.List)
	admin.Post("/usuarios", cfg.AdminUsers.Create)
	admin.Put("/usuarios/:id", cfg.AdminUsers.Update)
	admin.Delete("/usuarios/:id", cfg.AdminUsers.Delete)

	admin.Get("/pacientes", cfg.AdminPatients.List)
	admin.Post("/pacientes", cfg.AdminPatients.Create)
	admin.Put("/pacientes/:id", cfg.AdminPatients.Update)
	admin.Delete("/pacientes/:id", cfg.AdminPatients.Delete)

	admin.Get("/servicios", cfg.AdminServices.List)
	admin.Post("/servicios", cfg.AdminServices.Create)
	admin.Put("/servicios/:id", cfg.AdminServices.Update)
	admin.Delete("/servicios/:id", cfg.AdminServices.Delete)

	admin.Get("/citas", cfg.AdminAppointments.List)
	admin.Post("/citas", cfg.AdminAppointments.Create)
	admin.Put("/citas/:id", cfg.AdminAppointments.Update)
	admin.Delete("/citas/:id", cfg.AdminAppointments.Delete)

	admin.Get("/pagos", cfg.AdminPayments.List)
	admin.Post("/pagos", cfg.AdminPayments.Create)
	admin.Put("/pagos/:id", cfg.AdminPayments.Update)
	admin.Delete("/pagos/:id", cfg.AdminPayments.Delete)

	client := app.Group("/client", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCliente))
	client.Get("/dashboard", cfg.ClientPortal.Dashboard)
	client.Get("/servicios", cfg.ClientPortal.Services)
	client.Get("/pagos", cfg.ClientPortal.Payments)

	client.Get("/mascotas", cfg.ClientPets.List)
	client.Post("/mascotas", cfg.ClientPets.Create)
	client.Delete("/mascotas/:id", cfg.ClientPets.Delete)

	client.Get("/citas", cfg.ClientAppointments.List)
	client.Post("/citas", cfg.ClientAppointments.Create)

	client.Get("/examenes", cfg.ClientExams.List)
	client.Post("/examenes", cfg.ClientExams.Create)

	client.Get("/perfil", cfg.ClientProfile.Get)
	client.Put("/perfil", cfg.ClientProfile.Update)

	app.Use(NotFoundHandler)
}
