package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
	"github.com/brightvault/rwa-console-backend/pkg/types"
)

// Project is the tokenization draft built through the creation wizard.
// CurrentStep is the monotonic watermark of the highest step durably reached;
// TotalSupply and TokenDecimals are derived server-side and never accepted
// from callers.
type Project struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnterpriseID uuid.UUID `gorm:"column:enterprise_id;type:uuid;not null"`

	// Step 1: basics
	Name                         string          `gorm:"column:name;not null"`
	AssetType                    enums.AssetType `gorm:"column:asset_type;not null"`
	Description                  *string         `gorm:"column:description"`
	AcceptInstitutionalInvestors bool            `gorm:"column:accept_institutional_investors;not null;default:false"`

	// Step 2: blockchain
	WalletAddress *string             `gorm:"column:wallet_address"`
	Network       *enums.ChainNetwork `gorm:"column:network"`

	// Step 3: asset details
	AssetLocation    *string          `gorm:"column:asset_location"`
	AssetDescription *string          `gorm:"column:asset_description"`
	AssetValue       *decimal.Decimal `gorm:"column:asset_value;type:numeric(20,2)"`

	// Step 4: token settings (supply/decimals are derived fields)
	TokenName     *string          `gorm:"column:token_name"`
	TokenSymbol   *string          `gorm:"column:token_symbol"`
	TotalSupply   *int64           `gorm:"column:total_supply"`
	TokenDecimals *int             `gorm:"column:token_decimals"`
	InitialPrice  *decimal.Decimal `gorm:"column:initial_price;type:numeric(20,8)"`

	// Step 5: revenue model
	RevenueMode        *enums.RevenueMode        `gorm:"column:revenue_mode"`
	AnnualReturn       *decimal.Decimal          `gorm:"column:annual_return;type:numeric(6,2)"`
	PayoutFrequency    *enums.PayoutFrequency    `gorm:"column:payout_frequency"`
	CapitalProfile     *enums.CapitalProfile     `gorm:"column:capital_profile"`
	DistributionPolicy *enums.DistributionPolicy `gorm:"column:distribution_policy"`
	DistributionNotes  *string                   `gorm:"column:distribution_notes"`

	// Workflow state
	Status         enums.ProjectStatus  `gorm:"column:status;not null;default:'DRAFT'"`
	LifecycleStage enums.LifecycleStage `gorm:"column:lifecycle_stage;not null"`
	CurrentStep    int                  `gorm:"column:current_step;not null;default:1"`

	Portal types.PortalSettings `gorm:"column:portal;type:jsonb"`

	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	UpdatedBy uuid.UUID `gorm:"column:updated_by;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
