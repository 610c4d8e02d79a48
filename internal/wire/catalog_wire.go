package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/cache"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	store *cache.Cache,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Catalog reads are cached; categories change less often than menus
	r.With(middleware.CacheResponse(store, config.Cache.CategoryTTLSeconds, log)).
		Get("/categories", catalogHandler.GetCategories)

	r.With(middleware.CacheResponse(store, config.Cache.MenuTTLSeconds, log)).
		Get("/menus", catalogHandler.GetMenus)
	r.With(middleware.CacheResponse(store, config.Cache.MenuTTLSeconds, log)).
		Get("/menus/{menu_id}", catalogHandler.GetMenuByID)

	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.Authenticated(config.JWT, log),
		middleware.CustomerOwner(log),
	).Get("/customers/{customer_id}", catalogHandler.GetCustomerByID)
}
