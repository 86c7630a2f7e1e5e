package controllers

import (
	"net/http"

	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/api/responses"
	"github.com/brightvault/rwa-console-backend/api/validators"
	"github.com/brightvault/rwa-console-backend/internal/milestones"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
)

// MilestoneList returns the project's lifecycle checklist.
func MilestoneList(svc milestones.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "milestone service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, middleware.EnterpriseIDFromContext(ctx), projectID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"milestones": result})
	}
}
