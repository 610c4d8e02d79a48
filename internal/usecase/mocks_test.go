package usecase

import (
	"context"

	"food-ordering/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

// Repository mocks shared across the service tests

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*entity.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) FindByID(ctx context.Context, id int64) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Admin, error) {
	args := m.Called(ctx, identifier)
	a, _ := args.Get(0).(*entity.Admin)
	return a, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*entity.Category)
	return c, args.Error(1)
}

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) FindAll(ctx context.Context, categoryID *int64) ([]*entity.MenuWithCategory, error) {
	args := m.Called(ctx, categoryID)
	menus, _ := args.Get(0).([]*entity.MenuWithCategory)
	return menus, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id int64) (*entity.MenuWithCategory, error) {
	args := m.Called(ctx, id)
	menu, _ := args.Get(0).(*entity.MenuWithCategory)
	return menu, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, customerID int64) (*entity.Order, error) {
	args := m.Called(ctx, customerID)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderWithCustomer, error) {
	args := m.Called(ctx, customerID)
	o, _ := args.Get(0).([]*entity.OrderWithCustomer)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindAllWithCustomer(ctx context.Context, status *string, limit, offset int) ([]*entity.OrderWithCustomer, error) {
	args := m.Called(ctx, status, limit, offset)
	o, _ := args.Get(0).([]*entity.OrderWithCustomer)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *OrderRepoMock) RecomputeTotal(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) SumCompletedRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type OrderDetailRepoMock struct{ mock.Mock }

func (m *OrderDetailRepoMock) Create(ctx context.Context, detail *entity.OrderDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) FindByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderDetailWithMenu, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).([]*entity.OrderDetailWithMenu)
	return d, args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) FindByOrderID(ctx context.Context, orderID int64) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(*entity.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) CreateCompleting(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
