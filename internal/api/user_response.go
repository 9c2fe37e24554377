package api

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is a user record with the password hash stripped.
// swagger:model api.UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"8cc8f0a5-6ff5-4bb5-8a07-7e9dc8a7b153"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Points    int       `json:"points" example:"40"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
