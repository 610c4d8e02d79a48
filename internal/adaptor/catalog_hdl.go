package adaptor

import (
	"net/http"
	"strings"

	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}

// GetMenus handles GET /menus with an optional category_id filter
func (h *CatalogHandler) GetMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.GetMenus(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		h.handleServiceError(w, err, "list menus")
		return
	}

	utils.ResponseSuccess(w, "Menus retrieved", menus)
}

// GetMenuByID handles GET /menus/{menu_id}
func (h *CatalogHandler) GetMenuByID(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetMenuByID(r.Context(), chi.URLParam(r, "menu_id"))
	if err != nil {
		h.handleServiceError(w, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, "Menu retrieved", menu)
}

// GetCustomerByID handles GET /customers/{customer_id}
func (h *CatalogHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomerByID(r.Context(), chi.URLParam(r, "customer_id"))
	if err != nil {
		h.handleServiceError(w, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "Customer retrieved", customer)
}

// handleServiceError maps service errors to HTTP status codes
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(errMsg, "invalid id"):
		h.log.Warn(operation+" failed - bad id", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
