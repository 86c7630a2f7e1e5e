package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// ProjectToken records an on-chain token deployment for a project.
// Rows are upserted by (project_id, symbol).
type ProjectToken struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID       uuid.UUID          `gorm:"column:project_id;type:uuid;not null"`
	Chain           enums.ChainNetwork `gorm:"column:chain;not null"`
	Symbol          string             `gorm:"column:symbol;not null"`
	Decimal         int                `gorm:"column:decimal;not null"`
	ContractAddress *string            `gorm:"column:contract_address"`
	TotalSupply     *int64             `gorm:"column:total_supply"`
	NAV             *decimal.Decimal   `gorm:"column:nav;type:numeric(20,2)"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
