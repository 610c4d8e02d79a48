package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /auth/customer/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerRegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// LoginCustomer handles POST /auth/customer/login
func (h *AuthHandler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CustomerLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	resp, err := h.service.LoginCustomer(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "customer login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// LoginAdmin handles POST /auth/admin/login
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return
	}

	resp, err := h.service.LoginAdmin(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// CustomerProfile handles GET /auth/customer/profile
func (h *AuthHandler) CustomerProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.CustomerProfile(r.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(w, err, "get customer profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", resp)
}

// AdminProfile handles GET /auth/admin/profile
func (h *AuthHandler) AdminProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.AdminProfile(r.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(w, err, "get admin profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", resp)
}

// Verify handles GET /auth/verify. Reaching it at all means the token guard
// accepted the request, so it only echoes the claims back.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	utils.ResponseSuccess(w, "Token is valid", &response.VerifyResponse{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		UserType: claims.UserType,
		Role:     claims.Role,
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so this is an
// acknowledgement; the client discards the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if claims, ok := utils.GetClaimsFromContext(r.Context()); ok {
		h.log.Info("User logged out",
			zap.Int64("user_id", claims.UserID),
			zap.String("user_type", claims.UserType))
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// handleServiceError maps service errors to HTTP status codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(errMsg, "credentials"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
