package milestones

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

type stubProjectFinder struct {
	projects map[uuid.UUID]*models.Project
}

func (s *stubProjectFinder) FindForEnterprise(_ context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	project, ok := s.projects[projectID]
	if !ok || project.EnterpriseID != enterpriseID {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

type stubMilestoneStore struct {
	rows []models.ProjectMilestone
}

func (s *stubMilestoneStore) ListByProject(_ context.Context, projectID uuid.UUID) ([]models.ProjectMilestone, error) {
	var out []models.ProjectMilestone
	for _, row := range s.rows {
		if row.ProjectID == projectID {
			out = append(out, row)
		}
	}
	return out, nil
}

func TestListReturnsSeededChecklist(t *testing.T) {
	enterpriseID := uuid.New()
	projectID := uuid.New()

	finder := &stubProjectFinder{projects: map[uuid.UUID]*models.Project{
		projectID: {ID: projectID, EnterpriseID: enterpriseID},
	}}
	store := &stubMilestoneStore{rows: []models.ProjectMilestone{
		{ID: uuid.New(), ProjectID: projectID, Code: "project_setup", Title: "Project setup", SortOrder: 1, Status: enums.MilestoneStatusCompleted},
		{ID: uuid.New(), ProjectID: projectID, Code: "legal_review", Title: "Legal review", SortOrder: 2, Status: enums.MilestoneStatusPending},
		{ID: uuid.New(), ProjectID: uuid.New(), Code: "project_setup", Title: "Project setup", SortOrder: 1, Status: enums.MilestoneStatusPending},
	}}

	svc, err := NewService(store, finder)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	out, err := svc.List(context.Background(), enterpriseID, projectID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(out))
	}
	if out[0].Code != "project_setup" || out[0].Status != "COMPLETED" {
		t.Fatalf("unexpected first milestone: %+v", out[0])
	}
	if out[1].Code != "legal_review" || out[1].SortOrder != 2 {
		t.Fatalf("unexpected second milestone: %+v", out[1])
	}
}

func TestListHidesForeignProjects(t *testing.T) {
	projectID := uuid.New()
	finder := &stubProjectFinder{projects: map[uuid.UUID]*models.Project{
		projectID: {ID: projectID, EnterpriseID: uuid.New()},
	}}

	svc, err := NewService(&stubMilestoneStore{}, finder)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.List(context.Background(), uuid.New(), projectID)
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
