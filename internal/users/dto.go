package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// UserDTO is the account payload returned to console clients.
type UserDTO struct {
	ID           uuid.UUID  `json:"id"`
	EnterpriseID uuid.UUID  `json:"enterprise_id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	IsCreator    bool       `json:"is_creator"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FromModel maps the persisted user to its DTO.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:           user.ID,
		EnterpriseID: user.EnterpriseID,
		Email:        user.Email,
		Name:         user.Name,
		IsCreator:    user.IsCreator,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
}
