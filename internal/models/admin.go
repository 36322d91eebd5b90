package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a database-backed staff account. The environment-configured
// super-admin resolves through the same principal path without a row here.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
