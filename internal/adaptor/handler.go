package adaptor

import (
	"food-ordering/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Order   *OrderHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Order:   NewOrderHandler(service.Order, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}
