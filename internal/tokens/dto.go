package tokens

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// UpsertInput carries a token deployment record keyed by symbol.
type UpsertInput struct {
	Chain           string           `json:"chain" validate:"required"`
	Symbol          string           `json:"symbol" validate:"required,uppercase,min=2,max=8"`
	Decimal         int              `json:"decimal" validate:"gte=0,lte=36"`
	ContractAddress *string          `json:"contract_address,omitempty" validate:"omitempty,min=1"`
	TotalSupply     *int64           `json:"total_supply,omitempty" validate:"omitempty,gte=0"`
	NAV             *decimal.Decimal `json:"nav,omitempty"`
}

// TokenDTO is the API representation of a project token.
type TokenDTO struct {
	ID              uuid.UUID        `json:"id"`
	ProjectID       uuid.UUID        `json:"project_id"`
	Chain           string           `json:"chain"`
	Symbol          string           `json:"symbol"`
	Decimal         int              `json:"decimal"`
	ContractAddress *string          `json:"contract_address,omitempty"`
	TotalSupply     *int64           `json:"total_supply,omitempty"`
	NAV             *decimal.Decimal `json:"nav,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// FromModel maps a token row to its DTO.
func FromModel(token *models.ProjectToken) *TokenDTO {
	return &TokenDTO{
		ID:              token.ID,
		ProjectID:       token.ProjectID,
		Chain:           token.Chain.String(),
		Symbol:          token.Symbol,
		Decimal:         token.Decimal,
		ContractAddress: token.ContractAddress,
		TotalSupply:     token.TotalSupply,
		NAV:             token.NAV,
		CreatedAt:       token.CreatedAt,
		UpdatedAt:       token.UpdatedAt,
	}
}
