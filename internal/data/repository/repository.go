package repository

import (
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer    CustomerRepository
	Admin       AdminRepository
	Category    CategoryRepository
	Menu        MenuRepository
	Order       OrderRepository
	OrderDetail OrderDetailRepository
	Payment     PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer:    NewCustomerRepository(db, log),
		Admin:       NewAdminRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Menu:        NewMenuRepository(db, log),
		Order:       NewOrderRepository(db, log),
		OrderDetail: NewOrderDetailRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
	}
}
