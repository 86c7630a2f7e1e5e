package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db"
	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

// Service manages on-chain token records for a project. Tokens are keyed by
// (project, symbol): saving an existing symbol updates the row in place.
type Service interface {
	Upsert(ctx context.Context, enterpriseID, projectID uuid.UUID, input UpsertInput) (*TokenDTO, error)
	List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]TokenDTO, error)
}

type projectFinder interface {
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
}

type tokenStore interface {
	FindBySymbol(ctx context.Context, projectID uuid.UUID, symbol string) (*models.ProjectToken, error)
	Save(ctx context.Context, token *models.ProjectToken) (*models.ProjectToken, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectToken, error)
}

type service struct {
	repo     tokenStore
	projects projectFinder
}

// NewService constructs a token service instance.
func NewService(repo tokenStore, projects projectFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("token repository required")
	}
	if projects == nil {
		return nil, fmt.Errorf("project repository required")
	}
	return &service{repo: repo, projects: projects}, nil
}

// Upsert records a token deployment, updating the existing row when the
// symbol is already known for the project.
func (s *service) Upsert(ctx context.Context, enterpriseID, projectID uuid.UUID, input UpsertInput) (*TokenDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	chain, err := enums.ParseChainNetwork(strings.TrimSpace(input.Chain))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown chain %q", input.Chain))
	}
	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))
	if symbol == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "token symbol is required")
	}
	if input.Decimal < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "token decimal must not be negative")
	}
	if input.TotalSupply != nil && *input.TotalSupply < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total supply must not be negative")
	}
	if input.NAV != nil && input.NAV.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nav must not be negative")
	}

	token, err := s.repo.FindBySymbol(ctx, project.ID, symbol)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		token = &models.ProjectToken{ProjectID: project.ID, Symbol: symbol}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load token")
	}

	token.Chain = chain
	token.Decimal = input.Decimal
	if input.ContractAddress != nil {
		address := strings.TrimSpace(*input.ContractAddress)
		token.ContractAddress = &address
	}
	if input.TotalSupply != nil {
		token.TotalSupply = input.TotalSupply
	}
	if input.NAV != nil {
		token.NAV = input.NAV
	}

	saved, err := s.repo.Save(ctx, token)
	if err != nil {
		// Two concurrent upserts for the same symbol race past FindBySymbol;
		// the unique index catches the loser.
		if db.IsUniqueViolation(err, "idx_project_tokens_project_symbol") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "token symbol already recorded for this project")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: save token")
	}
	return FromModel(saved), nil
}

// List returns all tokens recorded for the project.
func (s *service) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]TokenDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list tokens")
	}

	out := make([]TokenDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
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
