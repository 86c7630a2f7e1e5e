package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/api/responses"
	"github.com/brightvault/rwa-console-backend/api/validators"
	"github.com/brightvault/rwa-console-backend/internal/projects"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
	"github.com/brightvault/rwa-console-backend/pkg/pagination"
)

type projectBasicsPayload struct {
	ProjectID                    *uuid.UUID `json:"project_id,omitempty"`
	Name                         string     `json:"name" validate:"required,min=1,max=200"`
	AssetType                    string     `json:"asset_type" validate:"required"`
	Description                  *string    `json:"description,omitempty"`
	AcceptInstitutionalInvestors bool       `json:"accept_institutional_investors"`
}

type projectBlockchainPayload struct {
	WalletAddress string `json:"wallet_address" validate:"required,min=1"`
	Network       string `json:"network" validate:"required"`
}

type projectAssetDetailsPayload struct {
	AssetLocation    string          `json:"asset_location" validate:"required,min=1"`
	AssetDescription string          `json:"asset_description" validate:"required,min=1"`
	AssetValue       decimal.Decimal `json:"asset_value"`
}

type projectTokenSettingsPayload struct {
	TokenName    string          `json:"token_name" validate:"required,min=1"`
	TokenSymbol  string          `json:"token_symbol" validate:"required,min=2,max=8"`
	InitialPrice decimal.Decimal `json:"initial_price"`
}

type projectRevenueModelPayload struct {
	RevenueMode        string          `json:"revenue_mode" validate:"required"`
	AnnualReturn       decimal.Decimal `json:"annual_return"`
	PayoutFrequency    string          `json:"payout_frequency" validate:"required"`
	CapitalProfile     string          `json:"capital_profile" validate:"required"`
	DistributionPolicy string          `json:"distribution_policy" validate:"required"`
	DistributionNotes  *string         `json:"distribution_notes,omitempty"`
}

// ProjectSaveBasics handles the wizard's first step: creating a draft or
// editing the basics of an existing one.
func ProjectSaveBasics(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		var body projectBasicsPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		assetType, err := enums.ParseAssetType(strings.TrimSpace(body.AssetType))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid asset type"))
			return
		}

		result, err := svc.SaveBasics(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projects.SaveBasicsInput{
				ProjectID:                    body.ProjectID,
				Name:                         body.Name,
				AssetType:                    assetType,
				Description:                  body.Description,
				AcceptInstitutionalInvestors: body.AcceptInstitutionalInvestors,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectSaveBlockchain handles step two.
func ProjectSaveBlockchain(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body projectBlockchainPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		network, err := enums.ParseChainNetwork(strings.TrimSpace(body.Network))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid network"))
			return
		}

		result, err := svc.SaveBlockchain(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID,
			projects.SaveBlockchainInput{
				WalletAddress: body.WalletAddress,
				Network:       network,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectSaveAssetDetails handles step three.
func ProjectSaveAssetDetails(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body projectAssetDetailsPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !body.AssetValue.IsPositive() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "asset value must be positive"))
			return
		}

		result, err := svc.SaveAssetDetails(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID,
			projects.SaveAssetDetailsInput{
				AssetLocation:    body.AssetLocation,
				AssetDescription: body.AssetDescription,
				AssetValue:       body.AssetValue,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectSaveTokenSettings handles step four. Total supply and decimals are
// derived server-side from the asset value and initial price.
func ProjectSaveTokenSettings(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body projectTokenSettingsPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SaveTokenSettings(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID,
			projects.SaveTokenSettingsInput{
				TokenName:    body.TokenName,
				TokenSymbol:  body.TokenSymbol,
				InitialPrice: body.InitialPrice,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectSaveRevenueModel handles step five.
func ProjectSaveRevenueModel(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body projectRevenueModelPayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		mode, err := enums.ParseRevenueMode(strings.TrimSpace(body.RevenueMode))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid revenue mode"))
			return
		}
		frequency, err := enums.ParsePayoutFrequency(strings.TrimSpace(body.PayoutFrequency))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payout frequency"))
			return
		}
		profile, err := enums.ParseCapitalProfile(strings.TrimSpace(body.CapitalProfile))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid capital profile"))
			return
		}
		policy, err := enums.ParseDistributionPolicy(strings.TrimSpace(body.DistributionPolicy))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid distribution policy"))
			return
		}
		if body.AnnualReturn.IsNegative() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "annual return must not be negative"))
			return
		}

		result, err := svc.SaveRevenueModel(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID,
			projects.SaveRevenueModelInput{
				RevenueMode:        mode,
				AnnualReturn:       body.AnnualReturn,
				PayoutFrequency:    frequency,
				CapitalProfile:     profile,
				DistributionPolicy: policy,
				DistributionNotes:  body.DistributionNotes,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectFinalize completes the wizard: the readiness checklist must pass
// before the project leaves the creation flow.
func ProjectFinalize(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Finalize(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectGet returns a single project scoped to the caller's enterprise.
func ProjectGet(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Get(ctx, middleware.EnterpriseIDFromContext(ctx), projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectList returns a cursor-paginated page of the enterprise's projects.
func ProjectList(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, middleware.EnterpriseIDFromContext(ctx), projects.ListInput{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ProjectDelete removes a project and all of its child records.
func ProjectDelete(svc projects.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "project service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, middleware.EnterpriseIDFromContext(ctx), projectID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
