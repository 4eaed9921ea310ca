package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which parts of the platform a user can access.
type Role string

const (
	RoleLady   Role = "lady"
	RoleClient Role = "client"
	RoleClub   Role = "club"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         Role       `json:"role" db:"role"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
