package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// ProjectMembership links a user with a project under a role. The
// (user_id, project_id, role) triple is unique; upserts are no-ops on
// conflict.
type ProjectMembership struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID         `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_membership_user_project_role"`
	ProjectID uuid.UUID         `gorm:"column:project_id;type:uuid;not null;uniqueIndex:idx_membership_user_project_role"`
	Role      enums.ProjectRole `gorm:"column:role;not null;uniqueIndex:idx_membership_user_project_role"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
}
