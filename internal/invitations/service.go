package invitations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

// Service manages project invitations. An invitation is consumed exactly
// once: accepting flips it to ACCEPTED and grants the membership.
type Service interface {
	Create(ctx context.Context, enterpriseID uuid.UUID, input CreateInput) (*InvitationDTO, error)
	List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]InvitationDTO, error)
	Accept(ctx context.Context, userID, enterpriseID uuid.UUID, userEmail string, invitationID uuid.UUID) (*InvitationDTO, error)
}

type projectFinder interface {
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
	FindByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
}

type invitationStore interface {
	Create(ctx context.Context, invitation *models.Invitation) (*models.Invitation, error)
	FindByID(ctx context.Context, invitationID uuid.UUID) (*models.Invitation, error)
	Update(ctx context.Context, invitation *models.Invitation) (*models.Invitation, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Invitation, error)
}

type membershipUpserter interface {
	Upsert(ctx context.Context, userID, projectID uuid.UUID, role enums.ProjectRole) error
}

type service struct {
	repo        invitationStore
	projects    projectFinder
	memberships membershipUpserter
}

// NewService constructs an invitation service instance.
func NewService(repo invitationStore, projects projectFinder, memberships membershipUpserter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invitation repository required")
	}
	if projects == nil {
		return nil, fmt.Errorf("project repository required")
	}
	if memberships == nil {
		return nil, fmt.Errorf("membership repository required")
	}
	return &service{repo: repo, projects: projects, memberships: memberships}, nil
}

// Create issues a PENDING invitation for the project.
func (s *service) Create(ctx context.Context, enterpriseID uuid.UUID, input CreateInput) (*InvitationDTO, error) {
	role, err := enums.ParseProjectRole(strings.TrimSpace(input.Role))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"role must be one of: CREATOR, LEGAL, ADMIN_OPS, AUDITOR")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	project, err := s.loadProject(ctx, input.ProjectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	invitation, err := s.repo.Create(ctx, &models.Invitation{
		ProjectID: project.ID,
		Email:     email,
		Role:      role,
		Status:    enums.InvitationStatusPending,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert invitation")
	}
	return FromModel(invitation), nil
}

// List returns the project's invitations, newest first.
func (s *service) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]InvitationDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list invitations")
	}

	out := make([]InvitationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Accept marks the invitation ACCEPTED and grants the caller the invited
// role on the project. The invitation email and the project's enterprise
// must both match the caller.
func (s *service) Accept(ctx context.Context, userID, enterpriseID uuid.UUID, userEmail string, invitationID uuid.UUID) (*InvitationDTO, error) {
	invitation, err := s.repo.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "invitation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load invitation")
	}

	if invitation.Status != enums.InvitationStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "invitation already processed")
	}
	if !strings.EqualFold(invitation.Email, strings.TrimSpace(userEmail)) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "invitation email does not match current user")
	}

	project, err := s.projects.FindByID(ctx, invitation.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load project")
	}
	if project.EnterpriseID != enterpriseID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "invitation does not belong to your enterprise")
	}
	if !invitation.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invitation role is invalid")
	}

	now := time.Now().UTC()
	invitation.Status = enums.InvitationStatusAccepted
	invitation.AcceptedAt = &now
	updated, err := s.repo.Update(ctx, invitation)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update invitation")
	}

	if err := s.memberships.Upsert(ctx, userID, invitation.ProjectID, invitation.Role); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert membership")
	}

	return FromModel(updated), nil
}

func (s *service) loadProject(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindForEnterprise(ctx, projectID, enterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load project")
	}
	return project, nil
}
