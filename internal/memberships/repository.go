package memberships

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// Repository exposes project membership persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repo to the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Upsert inserts the membership if the (user, project, role) triple does not
// exist yet. Replays are no-ops.
func (r *Repository) Upsert(ctx context.Context, userID, projectID uuid.UUID, role enums.ProjectRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid project role %q", role)
	}
	return r.db.WithContext(ctx).
		Exec(`INSERT INTO project_memberships (user_id, project_id, role) VALUES (?, ?, ?) ON CONFLICT (user_id, project_id, role) DO NOTHING`,
			userID, projectID, role).
		Error
}

// ListProjectMembers returns memberships joined with user metadata, ordered
// by when each member joined.
func (r *Repository) ListProjectMembers(ctx context.Context, projectID uuid.UUID) ([]MemberWithUser, error) {
	var rows []memberWithUserRow
	err := r.db.WithContext(ctx).
		Model(&models.ProjectMembership{}).
		Select("project_memberships.*, users.email AS user_email, users.name AS user_name").
		Joins("JOIN users ON users.id = project_memberships.user_id").
		Where("project_memberships.project_id = ?", projectID).
		Order("project_memberships.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return memberRowsToDTO(rows), nil
}

// DeleteByProject removes every membership tied to the project.
func (r *Repository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.ProjectMembership{}).Error
}

// UserHasRole reports whether the user holds one of the provided roles on the project.
func (r *Repository) UserHasRole(ctx context.Context, userID, projectID uuid.UUID, roles ...enums.ProjectRole) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProjectMembership{}).
		Where("user_id = ? AND project_id = ? AND role IN ?", userID, projectID, roles).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
