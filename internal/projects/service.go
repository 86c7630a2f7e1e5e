package projects

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/pagination"
)

// Token decimals are pinned server-side; callers never choose them.
const defaultTokenDecimals = 18

// Symbols are ticker-style: uppercase alphanumerics, 2 to 8 characters.
var tokenSymbolPattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)

// Service exposes the project wizard and project management operations.
// Step writes move the CurrentStep watermark forward only; replaying an
// earlier step never loses progress.
type Service interface {
	SaveBasics(ctx context.Context, userID, enterpriseID uuid.UUID, input SaveBasicsInput) (*ProjectDTO, error)
	SaveBlockchain(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveBlockchainInput) (*ProjectDTO, error)
	SaveAssetDetails(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveAssetDetailsInput) (*ProjectDTO, error)
	SaveTokenSettings(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveTokenSettingsInput) (*ProjectDTO, error)
	SaveRevenueModel(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveRevenueModelInput) (*ProjectDTO, error)
	Finalize(ctx context.Context, userID, enterpriseID, projectID uuid.UUID) (*ProjectDTO, error)
	Get(ctx context.Context, enterpriseID, projectID uuid.UUID) (*ProjectDTO, error)
	List(ctx context.Context, enterpriseID uuid.UUID, input ListInput) (*ProjectListResult, error)
	Delete(ctx context.Context, enterpriseID, projectID uuid.UUID) error
}

type projectStore interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
	List(ctx context.Context, enterpriseID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.Project, error)
	FinalizeWith(ctx context.Context, project *models.Project, seed func(tx *gorm.DB) error) (*models.Project, error)
	DeleteCascade(ctx context.Context, projectID uuid.UUID) error
}

type membershipUpserter interface {
	Upsert(ctx context.Context, userID, projectID uuid.UUID, role enums.ProjectRole) error
}

type milestoneSeeder interface {
	Seed(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error
}

type service struct {
	repo        projectStore
	memberships membershipUpserter
	milestones  milestoneSeeder
}

// NewService constructs a project service instance.
func NewService(repo projectStore, memberships membershipUpserter, milestones milestoneSeeder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("project repository required")
	}
	if memberships == nil {
		return nil, fmt.Errorf("membership repository required")
	}
	if milestones == nil {
		return nil, fmt.Errorf("milestone repository required")
	}
	return &service{
		repo:        repo,
		memberships: memberships,
		milestones:  milestones,
	}, nil
}

// SaveBasics creates a draft project or edits an existing one, then makes
// sure the acting user holds the CREATOR membership.
func (s *service) SaveBasics(ctx context.Context, userID, enterpriseID uuid.UUID, input SaveBasicsInput) (*ProjectDTO, error) {
	var project *models.Project

	if input.ProjectID != nil {
		existing, err := s.loadProject(ctx, *input.ProjectID, enterpriseID)
		if err != nil {
			return nil, err
		}
		existing.Name = strings.TrimSpace(input.Name)
		existing.AssetType = input.AssetType
		existing.Description = input.Description
		existing.AcceptInstitutionalInvestors = input.AcceptInstitutionalInvestors
		existing.CurrentStep = advanceStep(existing.CurrentStep, 2)
		existing.UpdatedBy = userID

		project, err = s.repo.Update(ctx, existing)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update project basics")
		}
	} else {
		created, err := s.repo.Create(ctx, &models.Project{
			EnterpriseID:                 enterpriseID,
			Name:                         strings.TrimSpace(input.Name),
			AssetType:                    input.AssetType,
			Description:                  input.Description,
			AcceptInstitutionalInvestors: input.AcceptInstitutionalInvestors,
			Status:                       enums.ProjectStatusDraft,
			LifecycleStage:               enums.LifecycleStageCreatingInProgress,
			CurrentStep:                  2,
			CreatedBy:                    userID,
			UpdatedBy:                    userID,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert project")
		}
		project = created
	}

	if err := s.memberships.Upsert(ctx, userID, project.ID, enums.ProjectRoleCreator); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert creator membership")
	}

	return FromModel(project), nil
}

// SaveBlockchain records the wallet address and network for step two.
func (s *service) SaveBlockchain(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveBlockchainInput) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	wallet := strings.TrimSpace(input.WalletAddress)
	network := input.Network
	project.WalletAddress = &wallet
	project.Network = &network
	project.CurrentStep = advanceStep(project.CurrentStep, 3)
	project.UpdatedBy = userID

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update blockchain settings")
	}
	return FromModel(updated), nil
}

// SaveAssetDetails records the asset profile and valuation for step three.
func (s *service) SaveAssetDetails(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveAssetDetailsInput) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	// Zero is not "not provided" here: a valuation must be strictly positive
	// or the supply derivation in step four divides to nothing.
	if !input.AssetValue.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "asset value must be positive")
	}

	location := strings.TrimSpace(input.AssetLocation)
	description := strings.TrimSpace(input.AssetDescription)
	value := input.AssetValue
	project.AssetLocation = &location
	project.AssetDescription = &description
	project.AssetValue = &value
	project.CurrentStep = advanceStep(project.CurrentStep, 4)
	project.UpdatedBy = userID

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update asset details")
	}
	return FromModel(updated), nil
}

// SaveTokenSettings derives the total supply from the asset value and the
// initial price, pins decimals, and records the token identity for step four.
func (s *service) SaveTokenSettings(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveTokenSettingsInput) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}
	if project.AssetValue == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "asset value required to compute supply")
	}
	if !input.InitialPrice.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "initial price must be positive")
	}

	tokenSymbol := strings.TrimSpace(input.TokenSymbol)
	if !tokenSymbolPattern.MatchString(tokenSymbol) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "token symbol must be 2-8 uppercase letters or digits")
	}

	quotient := project.AssetValue.Div(input.InitialPrice).Floor()
	if !quotient.IsPositive() || !quotient.BigInt().IsInt64() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidComputation, "invalid supply calculation")
	}
	supply := quotient.IntPart()

	tokenName := strings.TrimSpace(input.TokenName)
	price := input.InitialPrice
	decimals := defaultTokenDecimals

	project.TokenName = &tokenName
	project.TokenSymbol = &tokenSymbol
	project.TotalSupply = &supply
	project.TokenDecimals = &decimals
	project.InitialPrice = &price
	project.CurrentStep = advanceStep(project.CurrentStep, 5)
	project.UpdatedBy = userID

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update token settings")
	}
	return FromModel(updated), nil
}

// SaveRevenueModel records the distribution economics for step five.
func (s *service) SaveRevenueModel(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input SaveRevenueModelInput) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	mode := input.RevenueMode
	annual := input.AnnualReturn
	frequency := input.PayoutFrequency
	profile := input.CapitalProfile
	policy := input.DistributionPolicy

	project.RevenueMode = &mode
	project.AnnualReturn = &annual
	project.PayoutFrequency = &frequency
	project.CapitalProfile = &profile
	project.DistributionPolicy = &policy
	project.DistributionNotes = input.DistributionNotes
	project.CurrentStep = advanceStep(project.CurrentStep, 6)
	project.UpdatedBy = userID

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update revenue model")
	}
	return FromModel(updated), nil
}

// Finalize checks the completion checklist, seeds the default milestones,
// and marks the draft as fully created.
func (s *service) Finalize(ctx context.Context, userID, enterpriseID, projectID uuid.UUID) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	if missing := missingFields(project); len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeMissingFields, "missing required fields").
			WithDetails(map[string]any{"missing": missing})
	}

	project.Status = enums.ProjectStatusDraft
	project.LifecycleStage = enums.LifecycleStageCreatingCompleted
	project.CurrentStep = 6
	project.UpdatedBy = userID

	updated, err := s.repo.FinalizeWith(ctx, project, func(tx *gorm.DB) error {
		return s.milestones.Seed(ctx, tx, project.ID)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: finalize project")
	}
	return FromModel(updated), nil
}

// Get returns the project when it belongs to the enterprise.
func (s *service) Get(ctx context.Context, enterpriseID, projectID uuid.UUID) (*ProjectDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}
	return FromModel(project), nil
}

// List returns one page of the enterprise's projects, newest first.
func (s *service) List(ctx context.Context, enterpriseID uuid.UUID, input ListInput) (*ProjectListResult, error) {
	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(input.Limit)
	rows, err := s.repo.List(ctx, enterpriseID, pagination.LimitWithBuffer(input.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list projects")
	}

	var nextCursor *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		nextCursor = &token
	}

	projects := make([]ProjectDTO, 0, len(rows))
	for i := range rows {
		projects = append(projects, *FromModel(&rows[i]))
	}
	return &ProjectListResult{Projects: projects, NextCursor: nextCursor}, nil
}

// Delete removes the project and all dependent rows.
func (s *service) Delete(ctx context.Context, enterpriseID, projectID uuid.UUID) error {
	if _, err := s.loadProject(ctx, projectID, enterpriseID); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, projectID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete project cascade")
	}
	return nil
}

func (s *service) loadProject(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	project, err := s.repo.FindForEnterprise(ctx, projectID, enterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load project")
	}
	return project, nil
}

// advanceStep moves the watermark forward only.
func advanceStep(current, reached int) int {
	if current < reached {
		return reached
	}
	return current
}

// missingFields returns the finalization checklist labels for every field
// that is still unset, in checklist order. A zero annual return counts as
// provided.
func missingFields(project *models.Project) []string {
	var missing []string

	if strings.TrimSpace(project.Name) == "" {
		missing = append(missing, "Project name")
	}
	if project.AssetType == "" {
		missing = append(missing, "Asset type")
	}
	if project.WalletAddress == nil || strings.TrimSpace(*project.WalletAddress) == "" {
		missing = append(missing, "Wallet address")
	}
	if project.Network == nil {
		missing = append(missing, "Blockchain network")
	}
	if project.AssetLocation == nil || strings.TrimSpace(*project.AssetLocation) == "" {
		missing = append(missing, "Asset location")
	}
	if project.AssetDescription == nil || strings.TrimSpace(*project.AssetDescription) == "" {
		missing = append(missing, "Asset description")
	}
	if project.TokenName == nil || strings.TrimSpace(*project.TokenName) == "" {
		missing = append(missing, "Token name")
	}
	if project.TokenSymbol == nil || strings.TrimSpace(*project.TokenSymbol) == "" {
		missing = append(missing, "Token symbol")
	}
	if project.TotalSupply == nil || *project.TotalSupply == 0 {
		missing = append(missing, "Total supply")
	}
	if project.TokenDecimals == nil {
		missing = append(missing, "Token decimals")
	}
	if project.InitialPrice == nil || project.InitialPrice.IsZero() {
		missing = append(missing, "Initial price")
	}
	if project.RevenueMode == nil {
		missing = append(missing, "Revenue mode")
	}
	if project.AnnualReturn == nil {
		missing = append(missing, "Annual return")
	}
	if project.PayoutFrequency == nil {
		missing = append(missing, "Distribution frequency")
	}
	if project.CapitalProfile == nil {
		missing = append(missing, "Capital profile")
	}
	if project.DistributionPolicy == nil {
		missing = append(missing, "Distribution policy")
	}

	return missing
}
