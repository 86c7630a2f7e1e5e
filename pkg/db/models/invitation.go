package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// Invitation asks an email address to join a project under a role. It is
// consumed exactly once: PENDING transitions to ACCEPTED and never back.
type Invitation struct {
	ID         uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID  uuid.UUID              `gorm:"column:project_id;type:uuid;not null"`
	Email      string                 `gorm:"column:email;not null"`
	Role       enums.ProjectRole      `gorm:"column:role;not null"`
	Status     enums.InvitationStatus `gorm:"column:status;not null"`
	AcceptedAt *time.Time             `gorm:"column:accepted_at"`
	CreatedAt  time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
