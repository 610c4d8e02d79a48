package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testConfig = &utils.Config{
	JWT: utils.JWTConfig{Secret: "unit-test-secret", ExpiryHours: 1},
}

func newAuthServiceForTest(customers *CustomerRepoMock, admins *AdminRepoMock) AuthService {
	repo := &repository.Repository{
		Customer: customers,
		Admin:    admins,
	}
	return NewAuthService(repo, testConfig, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	customers := new(CustomerRepoMock)
	customers.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	customers.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
		// the password is stored hashed, never as given
		return c.Email == "ana@example.com" && c.PasswordHash != "" && c.PasswordHash != "secret123"
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Customer).ID = 42
	})

	svc := newAuthServiceForTest(customers, new(AdminRepoMock))

	resp, err := svc.Register(context.Background(), &request.CustomerRegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, utils.UserTypeCustomer, resp.UserType)
	assert.NotEmpty(t, resp.Token)

	// the issued token carries the new identity
	claims, err := utils.VerifyToken(testConfig.JWT.Secret, resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	// nothing password-shaped leaks through the profile
	raw, err := json.Marshal(resp.User)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret123")

	customers.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	customers := new(CustomerRepoMock)
	customers.On("FindByEmail", mock.Anything, "ana@example.com").Return(&entity.Customer{
		ID: 1, Email: "ana@example.com",
	}, nil)

	svc := newAuthServiceForTest(customers, new(AdminRepoMock))

	_, err := svc.Register(context.Background(), &request.CustomerRegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ValidationFailure(t *testing.T) {
	svc := newAuthServiceForTest(new(CustomerRepoMock), new(AdminRepoMock))

	_, err := svc.Register(context.Background(), &request.CustomerRegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "123",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

// Unknown email, deactivated account and wrong password must be
// indistinguishable to the caller.
func TestAuthService_LoginCustomer_CredentialCollapse(t *testing.T) {
	hash, err := utils.HashPassword("right-pass")
	assert.NoError(t, err)

	cases := []struct {
		name     string
		stored   *entity.Customer
		password string
	}{
		{"unknown email", nil, "right-pass"},
		{"deactivated", &entity.Customer{ID: 1, IsActive: false, PasswordHash: hash}, "right-pass"},
		{"no password set", &entity.Customer{ID: 1, IsActive: true, PasswordHash: ""}, "right-pass"},
		{"wrong password", &entity.Customer{ID: 1, IsActive: true, PasswordHash: hash}, "wrong-pass"},
	}

	for _, tc := range cases {
		customers := new(CustomerRepoMock)
		customers.On("FindByEmail", mock.Anything, "ana@example.com").Return(tc.stored, nil)

		svc := newAuthServiceForTest(customers, new(AdminRepoMock))

		_, err := svc.LoginCustomer(context.Background(), &request.CustomerLoginRequest{
			Email:    "ana@example.com",
			Password: tc.password,
		})
		assert.Error(t, err, tc.name)
		assert.Equal(t, "Invalid credentials", err.Error(), tc.name)
	}
}

func TestAuthService_LoginCustomer_Success(t *testing.T) {
	hash, err := utils.HashPassword("right-pass")
	assert.NoError(t, err)

	customers := new(CustomerRepoMock)
	customers.On("FindByEmail", mock.Anything, "ana@example.com").Return(&entity.Customer{
		ID: 42, Name: "Ana", Email: "ana@example.com", IsActive: true, PasswordHash: hash,
	}, nil)

	svc := newAuthServiceForTest(customers, new(AdminRepoMock))

	resp, err := svc.LoginCustomer(context.Background(), &request.CustomerLoginRequest{
		Email:    "ana@example.com",
		Password: "right-pass",
	})
	assert.NoError(t, err)

	claims, err := utils.VerifyToken(testConfig.JWT.Secret, resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, utils.UserTypeCustomer, claims.UserType)
	assert.Nil(t, claims.Role)
}

func TestAuthService_LoginAdmin_RoleClaim(t *testing.T) {
	hash, err := utils.HashPassword("admin-pass")
	assert.NoError(t, err)

	admins := new(AdminRepoMock)
	admins.On("FindByUsernameOrEmail", mock.Anything, "root").Return(&entity.Admin{
		ID: 1, Username: "root", Email: "root@example.com", Name: "Root",
		Role: entity.AdminRoleSuperAdmin, IsActive: true, PasswordHash: hash,
	}, nil)

	svc := newAuthServiceForTest(new(CustomerRepoMock), admins)

	resp, err := svc.LoginAdmin(context.Background(), &request.AdminLoginRequest{
		Username: "root",
		Password: "admin-pass",
	})
	assert.NoError(t, err)
	assert.Equal(t, utils.UserTypeAdmin, resp.UserType)

	claims, err := utils.VerifyToken(testConfig.JWT.Secret, resp.Token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.Role)
	assert.Equal(t, "super_admin", *claims.Role)
}

func TestAuthService_LoginAdmin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("admin-pass")
	assert.NoError(t, err)

	admins := new(AdminRepoMock)
	admins.On("FindByUsernameOrEmail", mock.Anything, "root").Return(&entity.Admin{
		ID: 1, Username: "root", Role: entity.AdminRoleAdmin, IsActive: true, PasswordHash: hash,
	}, nil)

	svc := newAuthServiceForTest(new(CustomerRepoMock), admins)

	_, err = svc.LoginAdmin(context.Background(), &request.AdminLoginRequest{
		Username: "root",
		Password: "nope",
	})
	assert.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestAuthService_CustomerProfile(t *testing.T) {
	customers := new(CustomerRepoMock)
	customers.On("FindByID", mock.Anything, int64(42)).Return(&entity.Customer{
		ID: 42, Name: "Ana", Email: "ana@example.com", IsActive: true,
	}, nil)

	svc := newAuthServiceForTest(customers, new(AdminRepoMock))

	profile, err := svc.CustomerProfile(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), profile.CustomerID)
	assert.Equal(t, utils.UserTypeCustomer, profile.UserType)
	assert.Equal(t, "/customers/42", profile.Links["self"])
}

func TestAuthService_CustomerProfile_InactiveHidden(t *testing.T) {
	customers := new(CustomerRepoMock)
	customers.On("FindByID", mock.Anything, int64(42)).Return(&entity.Customer{
		ID: 42, IsActive: false,
	}, nil)

	svc := newAuthServiceForTest(customers, new(AdminRepoMock))

	_, err := svc.CustomerProfile(context.Background(), 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
