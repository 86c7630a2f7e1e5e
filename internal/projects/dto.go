package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	"github.com/brightvault/rwa-console-backend/pkg/types"
)

// SaveBasicsInput holds the validated payload for the wizard's first step.
// When ProjectID is set the step edits an existing draft instead of creating
// a new one.
type SaveBasicsInput struct {
	ProjectID                    *uuid.UUID
	Name                         string
	AssetType                    enums.AssetType
	Description                  *string
	AcceptInstitutionalInvestors bool
}

// SaveBlockchainInput holds the wallet and network settings for step two.
type SaveBlockchainInput struct {
	WalletAddress string
	Network       enums.ChainNetwork
}

// SaveAssetDetailsInput holds the asset profile for step three.
type SaveAssetDetailsInput struct {
	AssetLocation    string
	AssetDescription string
	AssetValue       decimal.Decimal
}

// SaveTokenSettingsInput holds the caller-supplied token fields for step four.
// Supply and decimals are derived server-side and never accepted here.
type SaveTokenSettingsInput struct {
	TokenName    string
	TokenSymbol  string
	InitialPrice decimal.Decimal
}

// SaveRevenueModelInput holds the distribution economics for step five.
type SaveRevenueModelInput struct {
	RevenueMode        enums.RevenueMode
	AnnualReturn       decimal.Decimal
	PayoutFrequency    enums.PayoutFrequency
	CapitalProfile     enums.CapitalProfile
	DistributionPolicy enums.DistributionPolicy
	DistributionNotes  *string
}

// ListInput carries cursor pagination settings for project listings.
type ListInput struct {
	Limit  int
	Cursor string
}

// ProjectDTO is the project payload returned to console clients.
type ProjectDTO struct {
	ID           uuid.UUID `json:"id"`
	EnterpriseID uuid.UUID `json:"enterprise_id"`

	Name                         string  `json:"name"`
	AssetType                    string  `json:"asset_type"`
	Description                  *string `json:"description,omitempty"`
	AcceptInstitutionalInvestors bool    `json:"accept_institutional_investors"`

	WalletAddress *string `json:"wallet_address,omitempty"`
	Network       *string `json:"network,omitempty"`

	AssetLocation    *string          `json:"asset_location,omitempty"`
	AssetDescription *string          `json:"asset_description,omitempty"`
	AssetValue       *decimal.Decimal `json:"asset_value,omitempty"`

	TokenName     *string          `json:"token_name,omitempty"`
	TokenSymbol   *string          `json:"token_symbol,omitempty"`
	TotalSupply   *int64           `json:"total_supply,omitempty"`
	TokenDecimals *int             `json:"token_decimals,omitempty"`
	InitialPrice  *decimal.Decimal `json:"initial_price,omitempty"`

	RevenueMode        *string          `json:"revenue_mode,omitempty"`
	AnnualReturn       *decimal.Decimal `json:"annual_return,omitempty"`
	PayoutFrequency    *string          `json:"payout_frequency,omitempty"`
	CapitalProfile     *string          `json:"capital_profile,omitempty"`
	DistributionPolicy *string          `json:"distribution_policy,omitempty"`
	DistributionNotes  *string          `json:"distribution_notes,omitempty"`

	Status         string `json:"status"`
	LifecycleStage string `json:"lifecycle_stage"`
	CurrentStep    int    `json:"current_step"`

	Portal types.PortalSettings `json:"portal"`

	CreatedBy uuid.UUID `json:"created_by"`
	UpdatedBy uuid.UUID `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectListResult wraps one page of projects with the cursor for the next.
type ProjectListResult struct {
	Projects   []ProjectDTO `json:"projects"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

// FromModel maps the persisted project to its DTO.
func FromModel(project *models.Project) *ProjectDTO {
	if project == nil {
		return nil
	}
	return &ProjectDTO{
		ID:                           project.ID,
		EnterpriseID:                 project.EnterpriseID,
		Name:                         project.Name,
		AssetType:                    string(project.AssetType),
		Description:                  project.Description,
		AcceptInstitutionalInvestors: project.AcceptInstitutionalInvestors,
		WalletAddress:                project.WalletAddress,
		Network:                      enumString(project.Network),
		AssetLocation:                project.AssetLocation,
		AssetDescription:             project.AssetDescription,
		AssetValue:                   project.AssetValue,
		TokenName:                    project.TokenName,
		TokenSymbol:                  project.TokenSymbol,
		TotalSupply:                  project.TotalSupply,
		TokenDecimals:                project.TokenDecimals,
		InitialPrice:                 project.InitialPrice,
		RevenueMode:                  enumString(project.RevenueMode),
		AnnualReturn:                 project.AnnualReturn,
		PayoutFrequency:              enumString(project.PayoutFrequency),
		CapitalProfile:               enumString(project.CapitalProfile),
		DistributionPolicy:           enumString(project.DistributionPolicy),
		DistributionNotes:            project.DistributionNotes,
		Status:                       string(project.Status),
		LifecycleStage:               string(project.LifecycleStage),
		CurrentStep:                  project.CurrentStep,
		Portal:                       project.Portal,
		CreatedBy:                    project.CreatedBy,
		UpdatedBy:                    project.UpdatedBy,
		CreatedAt:                    project.CreatedAt,
		UpdatedAt:                    project.UpdatedAt,
	}
}

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
