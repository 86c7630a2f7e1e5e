package milestones

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

type defaultMilestone struct {
	Code  string
	Title string
}

// Finalizing a project seeds the standard lifecycle checkpoints.
var defaultMilestones = []defaultMilestone{
	{Code: "project_setup", Title: "Project setup completed"},
	{Code: "legal_review", Title: "Legal review"},
	{Code: "token_deployment", Title: "Token deployment"},
	{Code: "primary_distribution", Title: "Primary distribution"},
	{Code: "first_payout", Title: "First payout"},
}

// Repository exposes project milestone persistence operations.
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

// EnsureDefaults seeds the standard milestone set for the project. Rows are
// keyed by (project_id, code), so repeated calls leave existing rows alone.
func (r *Repository) EnsureDefaults(ctx context.Context, projectID uuid.UUID) error {
	tx := r.db.WithContext(ctx)
	for i, def := range defaultMilestones {
		err := tx.Exec(
			`INSERT INTO project_milestones (project_id, code, title, sort_order, status) VALUES (?, ?, ?, ?, ?) ON CONFLICT (project_id, code) DO NOTHING`,
			projectID, def.Code, def.Title, i+1, enums.MilestoneStatusPending,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Seed is EnsureDefaults bound to an existing transaction.
func (r *Repository) Seed(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
	return r.WithTx(tx).EnsureDefaults(ctx, projectID)
}

// ListByProject returns the project's milestones in display order.
func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMilestone, error) {
	var rows []models.ProjectMilestone
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByProject removes every milestone tied to the project.
func (r *Repository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&models.ProjectMilestone{}).Error
}
