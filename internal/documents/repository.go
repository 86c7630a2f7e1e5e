package documents

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// Repository exposes project document persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds the repo to the provided GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new document row.
func (r *Repository) Create(ctx context.Context, doc *models.ProjectDocument) (*models.ProjectDocument, error) {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// FindForProject loads a document scoped to its project.
func (r *Repository) FindForProject(ctx context.Context, documentID, projectID uuid.UUID) (*models.ProjectDocument, error) {
	var doc models.ProjectDocument
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", documentID, projectID).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByProject returns a project's documents, newest first.
func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectDocument, error) {
	var rows []models.ProjectDocument
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes the document row.
func (r *Repository) Delete(ctx context.Context, documentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", documentID).
		Delete(&models.ProjectDocument{}).Error
}
