package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/cache"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, store *cache.Cache, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, store, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, store, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	store *cache.Cache,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireCatalog(r, handler.Catalog, config, store, logger)
	wireOrder(r, handler.Order, config, logger)
	wireAdmin(r, handler.Admin, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Food Ordering API is running", map[string]any{
			"links": utils.APILinks(),
		})
	})

	return r
}
