package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/config"
	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

// Service exposes project document management. Files are proxied through the
// API into object storage; clients never talk to the bucket directly.
type Service interface {
	Upload(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input UploadInput) (*DocumentDTO, error)
	List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]DocumentDTO, error)
	Delete(ctx context.Context, enterpriseID, projectID, documentID uuid.UUID) error
}

type projectFinder interface {
	FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error)
}

type documentStore interface {
	Create(ctx context.Context, doc *models.ProjectDocument) (*models.ProjectDocument, error)
	FindForProject(ctx context.Context, documentID, projectID uuid.UUID) (*models.ProjectDocument, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectDocument, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
}

type objectStorage interface {
	WriteObject(ctx context.Context, key, contentType string, payload io.Reader) error
	DeleteObject(ctx context.Context, key string) error
	ObjectURL(key string) string
}

type service struct {
	repo     documentStore
	projects projectFinder
	storage  objectStorage
	cfg      config.DocumentsConfig
}

// NewService constructs a document service instance.
func NewService(repo documentStore, projects projectFinder, storage objectStorage, cfg config.DocumentsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("document repository required")
	}
	if projects == nil {
		return nil, fmt.Errorf("project repository required")
	}
	if storage == nil {
		return nil, fmt.Errorf("object storage required")
	}
	return &service{
		repo:     repo,
		projects: projects,
		storage:  storage,
		cfg:      cfg,
	}, nil
}

// Upload validates the file, streams it into object storage, and records the
// metadata row.
func (s *service) Upload(ctx context.Context, userID, enterpriseID, projectID uuid.UUID, input UploadInput) (*DocumentDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.FileName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !s.extensionAllowed(ext) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file type %q is not allowed", ext)).
			WithDetails(map[string]any{"allowed": s.cfg.AllowedExtensionList()})
	}
	if input.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is empty")
	}
	if maxBytes := int64(s.cfg.MaxUploadMB) * 1024 * 1024; input.SizeBytes > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file exceeds the %dMB upload limit", s.cfg.MaxUploadMB))
	}
	if input.Payload == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file payload is required")
	}

	key := fmt.Sprintf("projects/%s/%s%s", project.ID, uuid.NewString(), ext)
	if err := s.storage.WriteObject(ctx, key, input.ContentType, io.LimitReader(input.Payload, input.SizeBytes)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "gcs: write object")
	}

	doc, err := s.repo.Create(ctx, &models.ProjectDocument{
		ProjectID:   project.ID,
		FileName:    name,
		StorageKey:  key,
		URL:         s.storage.ObjectURL(key),
		SizeBytes:   input.SizeBytes,
		ContentType: input.ContentType,
		Status:      enums.DocumentStatusStored,
		Origin:      enums.DocumentOriginConsole,
		UploadedBy:  userID,
	})
	if err != nil {
		// the object is already in the bucket; roll it back so storage does
		// not accumulate orphans
		_ = s.storage.DeleteObject(ctx, key)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert document")
	}

	return FromModel(doc), nil
}

// List returns the project's documents, newest first.
func (s *service) List(ctx context.Context, enterpriseID, projectID uuid.UUID) ([]DocumentDTO, error) {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list documents")
	}

	out := make([]DocumentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Delete removes the document row and its stored object.
func (s *service) Delete(ctx context.Context, enterpriseID, projectID, documentID uuid.UUID) error {
	project, err := s.loadProject(ctx, projectID, enterpriseID)
	if err != nil {
		return err
	}

	doc, err := s.repo.FindForProject(ctx, documentID, project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load document")
	}

	if err := s.repo.Delete(ctx, doc.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete document")
	}
	if err := s.storage.DeleteObject(ctx, doc.StorageKey); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "gcs: delete object")
	}
	return nil
}

func (s *service) loadProject(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindForEnterprise(ctx, projectID, enterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load project")
	}
	return project, nil
}

func (s *service) extensionAllowed(ext string) bool {
	if ext == "" {
		return false
	}
	for _, allowed := range s.cfg.AllowedExtensionList() {
		if ext == allowed {
			return true
		}
	}
	return false
}
