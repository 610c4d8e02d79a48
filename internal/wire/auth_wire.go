package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/customer/register", authHandler.Register)
	r.Post("/auth/customer/login", authHandler.LoginCustomer)
	r.Post("/auth/admin/login", authHandler.LoginAdmin)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticated(config.JWT, log))

		r.With(middleware.Customer(log)).Get("/auth/customer/profile", authHandler.CustomerProfile)
		r.With(middleware.Admin(log)).Get("/auth/admin/profile", authHandler.AdminProfile)

		r.Get("/auth/verify", authHandler.Verify)
		r.Post("/auth/logout", authHandler.Logout)
	})
}
