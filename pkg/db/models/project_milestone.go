package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// ProjectMilestone is a lifecycle checkpoint seeded when a project is
// finalized. Seeding is idempotent by (project_id, code).
type ProjectMilestone struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID uuid.UUID             `gorm:"column:project_id;type:uuid;not null"`
	Code      string                `gorm:"column:code;not null"`
	Title     string                `gorm:"column:title;not null"`
	SortOrder int                   `gorm:"column:sort_order;not null"`
	Status    enums.MilestoneStatus `gorm:"column:status;not null"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
