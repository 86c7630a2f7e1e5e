package milestones

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

// Service exposes read access to a project's milestone checklist.
type Service interface {
	List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]MilestoneDTO, error)
}

type projectFinder interface {
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
}

type milestoneStore interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectMilestone, error)
}

type service struct {
	repo     milestoneStore
	projects projectFinder
}

// NewService constructs a milestone service instance.
func NewService(repo milestoneStore, projects projectFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("milestone repository required")
	}
	if projects == nil {
		return nil, fmt.Errorf("project repository required")
	}
	return &service{repo: repo, projects: projects}, nil
}

// List returns the project's milestones in display order.
func (s *service) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]MilestoneDTO, error) {
	project, err := s.projects.FindForEnterprise(ctx, projectID, enterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load project")
	}

	rows, err := s.repo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list milestones")
	}

	out := make([]MilestoneDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
