package entity

import (
	"time"
)

type Customer struct {
	ID           int64     `db:"customer_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        *string   `db:"phone"`
	Address      *string   `db:"address"`
	PasswordHash string    `db:"password"`
	IsActive     bool      `db:"is_active"`
	LastUpdate   time.Time `db:"last_update"`
}
