package controllers

import (
	"net/http"

	"github.com/brightvault/rwa-console-backend/api/middleware"
	"github.com/brightvault/rwa-console-backend/api/responses"
	"github.com/brightvault/rwa-console-backend/api/validators"
	"github.com/brightvault/rwa-console-backend/internal/documents"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
)

// multipart memory cap; anything beyond this spills to a temp file
const uploadMemoryLimit = 10 << 20

// DocumentUpload accepts a multipart file and stores it against the project.
func DocumentUpload(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart payload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		result, err := svc.Upload(ctx,
			middleware.UserIDFromContext(ctx),
			middleware.EnterpriseIDFromContext(ctx),
			projectID,
			documents.UploadInput{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				SizeBytes:   header.Size,
				Payload:     file,
			})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// DocumentList returns the project's documents.
func DocumentList(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
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

		responses.WriteSuccess(w, map[string]any{"documents": result})
	}
}

// DocumentDelete removes a document and its stored object.
func DocumentDelete(svc documents.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "document service unavailable"))
			return
		}

		projectID, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		documentID, err := validators.ParseUUIDParam(r, "documentID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, middleware.EnterpriseIDFromContext(ctx), projectID, documentID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
