package controllers

import (
	"net/http"

	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/api/responses"
	"github.com/brightvault/rwa-console-backend/api/validators"
	"github.com/brightvault/rwa-console-backend/internal/memberships"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
)

// MemberList returns the project roster.
func MemberList(svc memberships.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "membership service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.ListMembers(ctx, middleware.EnterpriseIDFromContext(ctx), projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"members": result})
	}
}

// MemberAdd grants a role on the project to an existing user.
func MemberAdd(svc memberships.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "membership service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body memberships.AddMemberInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.AddMember(ctx, middleware.EnterpriseIDFromContext(ctx), projectID, body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "added"})
	}
}
