package entity

import (
	"time"
)

type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// Admin is a separate entity from Customer, no shared table
type Admin struct {
	ID           int64     `db:"admin_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password"`
	Role         AdminRole `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	LastUpdate   time.Time `db:"last_update"`
}
