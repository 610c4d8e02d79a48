package usecase

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.CustomerRegisterRequest) (*response.AuthResponse, error)
	LoginCustomer(ctx context.Context, req *request.CustomerLoginRequest) (*response.AuthResponse, error)
	LoginAdmin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error)
	CustomerProfile(ctx context.Context, customerID int64) (*response.CustomerProfile, error)
	AdminProfile(ctx context.Context, adminID int64) (*response.AdminProfile, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.CustomerRegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email not taken
	existing, err := s.repo.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("Email already exists")
	}

	// 3. Hash password; the plaintext is never stored or logged
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create customer
	customer := &entity.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: hashed,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Issue token
	token, err := utils.GenerateToken(s.config.JWT,
		customer.ID, customer.Email, customer.Name, utils.UserTypeCustomer, nil)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("customer_id", customer.ID))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Customer registered",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email))

	return &response.AuthResponse{
		User:     s.convertCustomerProfile(customer),
		Token:    token,
		UserType: utils.UserTypeCustomer,
	}, nil
}

func (s *authService) LoginCustomer(ctx context.Context, req *request.CustomerLoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find customer
	customer, err := s.repo.Customer.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Not-found, inactive, missing hash and bad password all collapse to the
	// same signal: nothing leaks about which part was wrong
	if customer == nil || !customer.IsActive || customer.PasswordHash == "" {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, fmt.Errorf("Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("customer_id", customer.ID))
		return nil, fmt.Errorf("Invalid credentials")
	}

	// 3. Issue token
	token, err := utils.GenerateToken(s.config.JWT,
		customer.ID, customer.Email, customer.Name, utils.UserTypeCustomer, nil)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("customer_id", customer.ID))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Customer logged in",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email))

	return &response.AuthResponse{
		User:     s.convertCustomerProfile(customer),
		Token:    token,
		UserType: utils.UserTypeCustomer,
	}, nil
}

func (s *authService) LoginAdmin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find admin by username or email
	admin, err := s.repo.Admin.FindByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find admin", zap.Error(err), zap.String("identifier", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}

	if admin == nil || !admin.IsActive || admin.PasswordHash == "" {
		s.log.Warn("Admin login rejected", zap.String("identifier", req.Username))
		return nil, fmt.Errorf("Invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid admin password", zap.Int64("admin_id", admin.ID))
		return nil, fmt.Errorf("Invalid credentials")
	}

	// 3. Issue token with the admin role claim
	role := string(admin.Role)
	token, err := utils.GenerateToken(s.config.JWT,
		admin.ID, admin.Email, admin.Name, utils.UserTypeAdmin, &role)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("admin_id", admin.ID))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Admin logged in",
		zap.Int64("admin_id", admin.ID),
		zap.String("username", admin.Username))

	return &response.AuthResponse{
		User:     s.convertAdminProfile(admin),
		Token:    token,
		UserType: utils.UserTypeAdmin,
	}, nil
}

func (s *authService) CustomerProfile(ctx context.Context, customerID int64) (*response.CustomerProfile, error) {
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to load customer profile", zap.Error(err), zap.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if customer == nil || !customer.IsActive {
		return nil, fmt.Errorf("User not found")
	}

	profile := s.convertCustomerProfile(customer)
	profile.UserType = utils.UserTypeCustomer
	return profile, nil
}

func (s *authService) AdminProfile(ctx context.Context, adminID int64) (*response.AdminProfile, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		s.log.Error("Failed to load admin profile", zap.Error(err), zap.Int64("admin_id", adminID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if admin == nil || !admin.IsActive {
		return nil, fmt.Errorf("Admin not found")
	}

	profile := s.convertAdminProfile(admin)
	profile.UserType = utils.UserTypeAdmin
	return profile, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) convertCustomerProfile(customer *entity.Customer) *response.CustomerProfile {
	return &response.CustomerProfile{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		LastUpdate: customer.LastUpdate,
		Links:      utils.CustomerLinks(customer.ID),
	}
}

func (s *authService) convertAdminProfile(admin *entity.Admin) *response.AdminProfile {
	return &response.AdminProfile{
		AdminID:    admin.ID,
		Username:   admin.Username,
		Email:      admin.Email,
		Name:       admin.Name,
		Role:       string(admin.Role),
		CreatedAt:  admin.CreatedAt,
		LastUpdate: admin.LastUpdate,
	}
}
