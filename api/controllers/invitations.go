package controllers

import (
	"net/http"

	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/api/responses"
	"github.com/brightvault/rwa-console-backend/api/validators"
	"github.com/brightvault/rwa-console-backend/internal/invitations"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
)

// InvitationCreate issues a pending invitation for a project role.
func InvitationCreate(svc invitations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "invitation service unavailable"))
			return
		}

		var body invitations.CreateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Create(ctx, middleware.EnterpriseIDFromContext(ctx), body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"invitation": result})
	}
}

// InvitationList returns the invitations issued for a project.
func InvitationList(svc invitations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "invitation service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDQuery(r, "project_id", true)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, middleware.EnterpriseIDFromContext(ctx), projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"invitations": result})
	}
}

// InvitationAccept consumes a pending invitation for the caller.
func InvitationAccept(svc invitations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "invitation service unavailable"))
			return
		}

		invitationID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Accept(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			middleware.UserEmailFromContext(ctx),
			invitationID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"invitation": result})
	}
}
