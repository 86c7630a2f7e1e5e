package invitations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// Repository exposes invitation persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repo to the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create persists a new invitation row.
func (r *Repository) Create(ctx context.Context, invitation *models.Invitation) (*models.Invitation, error) {
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return nil, err
	}
	return invitation, nil
}

// FindByID loads an invitation by its identifier.
func (r *Repository) FindByID(ctx context.Context, invitationID uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).
		Where("id = ?", invitationID).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Update persists changes to an invitation row.
func (r *Repository) Update(ctx context.Context, invitation *models.Invitation) (*models.Invitation, error) {
	if err := r.db.WithContext(ctx).Save(invitation).Error; err != nil {
		return nil, err
	}
	return invitation, nil
}

// ListByProject returns a project's invitations, newest first.
func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Invitation, error) {
	var rows []models.Invitation
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByProject removes all invitation rows belonging to a project.
func (r *Repository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.Invitation{}).Error
}
