package memberships

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

// Service manages the project member roster.
type Service interface {
	ListMembers(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]MemberWithUser, error)
	AddMember(ctx context.Context, enterpriseID, projectID uuid.UUID, input AddMemberInput) error
}

type projectFinder interface {
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type membershipStore interface {
	Upsert(ctx context.Context, userID, projectID uuid.UUID, role enums.ProjectRole) error
	ListProjectMembers(ctx context.Context, projectID uuid.UUID) ([]MemberWithUser, error)
}

type service struct {
	repo     membershipStore
	projects projectFinder
	users    userFinder
}

// NewService constructs a membership service instance.
func NewService(repo membershipStore, projects projectFinder, users userFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("membership repository required")
	}
	if projects == nil {
		return nil, fmt.Errorf("project repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo, projects: projects, users: users}, nil
}

// ListMembers returns the project roster with user metadata.
func (s *service) ListMembers(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]MemberWithUser, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListProjectMembers(ctx, project.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list members")
	}
	return members, nil
}

// AddMember grants an existing user a role on the project. The user must
// belong to the caller's enterprise.
func (s *service) AddMember(ctx context.Context, enterpriseID, projectID uuid.UUID, input AddMemberInput) error {
	role, err := enums.ParseProjectRole(strings.TrimSpace(input.Role))
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation,
			"role must be one of: CREATOR, LEGAL, ADMIN_OPS, AUDITOR")
	}

	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return err
	}

	target, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	if target.EnterpriseID != enterpriseID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "user does not belong to this enterprise")
	}

	if err := s.repo.Upsert(ctx, target.ID, project.ID, role); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert membership")
	}
	return nil
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
