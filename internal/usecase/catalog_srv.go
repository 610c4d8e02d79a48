package usecase

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService is the read-only projection over categories and menus.
// No mutation endpoints exist for either.
type CatalogService interface {
	GetCategories(ctx context.Context) ([]*response.CategoryResponse, error)
	GetMenus(ctx context.Context, categoryIDRaw string) ([]*response.MenuResponse, error)
	GetMenuByID(ctx context.Context, idRaw string) (*response.MenuResponse, error)
	GetCustomerByID(ctx context.Context, idRaw string) (*response.CustomerProfile, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetCategories(ctx context.Context) ([]*response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	result := make([]*response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, &response.CategoryResponse{
			CategoryID:  category.ID,
			Name:        category.Name,
			Description: category.Description,
			Links:       utils.CategoryLinks(category.ID),
		})
	}

	return result, nil
}

func (s *catalogService) GetMenus(ctx context.Context, categoryIDRaw string) ([]*response.MenuResponse, error) {
	var categoryID *int64
	if categoryIDRaw != "" {
		id, err := utils.ParseID(categoryIDRaw)
		if err != nil {
			return nil, fmt.Errorf("Invalid id format")
		}
		categoryID = &id
	}

	menus, err := s.repo.Menu.FindAll(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load menus: %w", err)
	}

	result := make([]*response.MenuResponse, 0, len(menus))
	for _, menu := range menus {
		result = append(result, s.convertMenu(menu))
	}

	return result, nil
}

func (s *catalogService) GetMenuByID(ctx context.Context, idRaw string) (*response.MenuResponse, error) {
	// Strict digits gate before any data-store access
	id, err := utils.ParseID(idRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	menu, err := s.repo.Menu.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load menu %d: %w", id, err)
	}
	if menu == nil {
		return nil, fmt.Errorf("Menu not found")
	}

	return s.convertMenu(menu), nil
}

func (s *catalogService) GetCustomerByID(ctx context.Context, idRaw string) (*response.CustomerProfile, error) {
	id, err := utils.ParseID(idRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load customer %d: %w", id, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("Customer not found")
	}

	return &response.CustomerProfile{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		LastUpdate: customer.LastUpdate,
		Links:      utils.CustomerLinks(customer.ID),
	}, nil
}

func (s *catalogService) convertMenu(menu *entity.MenuWithCategory) *response.MenuResponse {
	return &response.MenuResponse{
		MenuID:       menu.ID,
		Name:         menu.Name,
		Description:  menu.Description,
		Price:        menu.Price,
		ImageURL:     menu.ImageURL,
		CategoryID:   menu.CategoryID,
		CategoryName: menu.CategoryName,
		Links:        utils.MenuLinks(menu.ID, menu.CategoryID),
	}
}
