package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	UserTypeCustomer = "customer"
	UserTypeAdmin    = "admin"
)

// Claims is the signed token payload. Validity is purely signature + expiry;
// nothing is stored server side, so a token cannot be revoked before it expires.
type Claims struct {
	UserID   int64   `json:"user_id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	UserType string  `json:"user_type"`
	Role     *string `json:"role,omitempty"` // admin tokens only
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 signed token for the given identity
func GenerateToken(cfg JWTConfig, userID int64, email, name, userType string, role *string) (string, error) {
	expiryHours := cfg.ExpiryHours
	if expiryHours <= 0 {
		expiryHours = 24
	}

	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		Name:     name,
		UserType: userType,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a signed token. Expired and malformed
// tokens both come back as errors; callers collapse them for the client but
// may log the distinction.
func VerifyToken(secret, raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
