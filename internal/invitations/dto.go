package invitations

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// CreateInput invites an email address to join a project under a role.
type CreateInput struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Role      string    `json:"role" validate:"required"`
}

// InvitationDTO is the API representation of an invitation.
type InvitationDTO struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"project_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// FromModel maps an invitation row to its DTO.
func FromModel(invitation *models.Invitation) *InvitationDTO {
	return &InvitationDTO{
		ID:         invitation.ID,
		ProjectID:  invitation.ProjectID,
		Email:      invitation.Email,
		Role:       invitation.Role.String(),
		Status:     invitation.Status.String(),
		AcceptedAt: invitation.AcceptedAt,
		CreatedAt:  invitation.CreatedAt,
	}
}
