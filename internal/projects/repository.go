package projects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/pagination"
)

// Repository exposes project persistence operations. Every read is scoped to
// an enterprise so rows from other tenants behave as if they do not exist.
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

// Create persists a new project draft.
func (r *Repository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Update saves every field of the project row.
func (r *Repository) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// FindByID loads a project without tenant scoping. Callers own the
// enterprise check.
func (r *Repository) FindByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", projectID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindForEnterprise loads the project only when it belongs to the enterprise.
func (r *Repository) FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND enterprise_id = ?", projectID, enterpriseID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns up to limit projects for the enterprise, newest first,
// starting after the cursor when one is given.
func (r *Repository) List(ctx context.Context, enterpriseID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.Project, error) {
	q := r.db.WithContext(ctx).
		Where("enterprise_id = ?", enterpriseID).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Project
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FinalizeWith saves the project row and runs seed inside one transaction,
// so milestone seeding and the lifecycle flip commit or roll back together.
func (r *Repository) FinalizeWith(ctx context.Context, project *models.Project, seed func(tx *gorm.DB) error) (*models.Project, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seed(tx); err != nil {
			return err
		}
		return tx.Save(project).Error
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteCascade removes the project and every dependent row in one
// transaction, children first to satisfy foreign keys.
func (r *Repository) DeleteCascade(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{
			&models.ProjectDocument{},
			&models.ProjectToken{},
			&models.ProjectMilestone{},
			&models.Invitation{},
			&models.ProjectMembership{},
		} {
			if err := tx.Where("project_id = ?", projectID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", projectID).Delete(&models.Project{}).Error
	})
}
