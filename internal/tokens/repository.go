package tokens

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// Repository exposes project token persistence operations.
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

// FindBySymbol loads a token row for a project by its symbol.
func (r *Repository) FindBySymbol(ctx context.Context, projectID uuid.UUID, symbol string) (*models.ProjectToken, error) {
	var token models.ProjectToken
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND symbol = ?", projectID, symbol).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Save inserts or updates a token row.
func (r *Repository) Save(ctx context.Context, token *models.ProjectToken) (*models.ProjectToken, error) {
	if err := r.db.WithContext(ctx).Save(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

// ListByProject returns all tokens recorded for a project.
func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectToken, error) {
	var rows []models.ProjectToken
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByProject removes all token rows belonging to a project.
func (r *Repository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.ProjectToken{}).Error
}
