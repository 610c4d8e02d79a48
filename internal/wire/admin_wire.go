package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Authenticated(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Get("/dashboard", adminHandler.Dashboard)
		r.Get("/customers", adminHandler.GetCustomers)
		r.Get("/orders", adminHandler.GetOrders)
		r.Patch("/orders/{order_id}/status", adminHandler.UpdateOrderStatus)

		r.Delete("/cache", adminHandler.ClearCache)
	})
}
