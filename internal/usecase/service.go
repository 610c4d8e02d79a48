package usecase

import (
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/cache"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Order   OrderService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, store *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Order:   NewOrderService(repo, store, log),
		Admin:   NewAdminService(repo, store, log),
	}
}
