package documents

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightvault/rwa-console-backend/pkg/config"
	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	pkgerrors "github.com/brightvault/rwa-console-backend/pkg/errors"
)

type stubProjectFinder struct {
	project *models.Project
}

func (s *stubProjectFinder) FindForEnterprise(ctx context.Context, projectID, enterpriseID uuid.UUID) (*models.Project, error) {
	if s.project == nil || s.project.ID != projectID || s.project.EnterpriseID != enterpriseID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.project, nil
}

type stubDocumentStore struct {
	docs      map[uuid.UUID]*models.ProjectDocument
	createErr error
}

func newStubDocumentStore() *stubDocumentStore {
	return &stubDocumentStore{docs: make(map[uuid.UUID]*models.ProjectDocument)}
}

func (s *stubDocumentStore) Create(ctx context.Context, doc *models.ProjectDocument) (*models.ProjectDocument, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	doc.ID = uuid.New()
	s.docs[doc.ID] = doc
	return doc, nil
}

func (s *stubDocumentStore) FindForProject(ctx context.Context, documentID, projectID uuid.UUID) (*models.ProjectDocument, error) {
	doc, ok := s.docs[documentID]
	if !ok || doc.ProjectID != projectID {
		return nil, gorm.ErrRecordNotFound
	}
	return doc, nil
}

func (s *stubDocumentStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectDocument, error) {
	var rows []models.ProjectDocument
	for _, doc := range s.docs {
		if doc.ProjectID == projectID {
			rows = append(rows, *doc)
		}
	}
	return rows, nil
}

func (s *stubDocumentStore) Delete(ctx context.Context, documentID uuid.UUID) error {
	delete(s.docs, documentID)
	return nil
}

type stubStorage struct {
	written map[string][]byte
	deleted []string
}

func newStubStorage() *stubStorage {
	return &stubStorage{written: make(map[string][]byte)}
}

func (s *stubStorage) WriteObject(ctx context.Context, key, contentType string, payload io.Reader) error {
	data, err := io.ReadAll(payload)
	if err != nil {
		return err
	}
	s.written[key] = data
	return nil
}

func (s *stubStorage) DeleteObject(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.written, key)
	return nil
}

func (s *stubStorage) ObjectURL(key string) string {
	return "https://storage.googleapis.com/test-bucket/" + key
}

type documentsFixture struct {
	svc          Service
	store        *stubDocumentStore
	storage      *stubStorage
	project      *models.Project
	userID       uuid.UUID
	enterpriseID uuid.UUID
}

func newDocumentsFixture(t *testing.T) *documentsFixture {
	t.Helper()
	enterpriseID := uuid.New()
	project := &models.Project{ID: uuid.New(), EnterpriseID: enterpriseID}
	store := newStubDocumentStore()
	storage := newStubStorage()

	svc, err := NewService(store, &stubProjectFinder{project: project}, storage, config.DocumentsConfig{
		MaxUploadMB:       10,
		AllowedExtensions: ".pdf,.doc,.docx",
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return &documentsFixture{
		svc:          svc,
		store:        store,
		storage:      storage,
		project:      project,
		userID:       uuid.New(),
		enterpriseID: enterpriseID,
	}
}

func TestUploadStoresObjectAndRow(t *testing.T) {
	f := newDocumentsFixture(t)

	dto, err := f.svc.Upload(context.Background(), f.userID, f.enterpriseID, f.project.ID, UploadInput{
		FileName:    "prospectus.pdf",
		ContentType: "application/pdf",
		SizeBytes:   12,
		Payload:     bytes.NewReader([]byte("pdf contents")),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if dto.FileName != "prospectus.pdf" {
		t.Fatalf("unexpected file name %q", dto.FileName)
	}
	if dto.Status != "stored" || dto.Origin != "console" {
		t.Fatalf("unexpected status/origin %s/%s", dto.Status, dto.Origin)
	}
	if dto.UploadedBy != f.userID {
		t.Fatal("expected uploader stamped")
	}
	if len(f.storage.written) != 1 {
		t.Fatalf("expected one stored object, got %d", len(f.storage.written))
	}
	if !strings.HasPrefix(dto.URL, "https://storage.googleapis.com/test-bucket/projects/") {
		t.Fatalf("unexpected url %q", dto.URL)
	}
	if !strings.Contains(dto.URL, f.project.ID.String()) {
		t.Fatal("expected object key scoped to the project")
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	f := newDocumentsFixture(t)

	_, err := f.svc.Upload(context.Background(), f.userID, f.enterpriseID, f.project.ID, UploadInput{
		FileName:    "malware.exe",
		ContentType: "application/octet-stream",
		SizeBytes:   10,
		Payload:     bytes.NewReader([]byte("0123456789")),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(f.storage.written) != 0 {
		t.Fatal("nothing must be written for a rejected upload")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	f := newDocumentsFixture(t)

	_, err := f.svc.Upload(context.Background(), f.userID, f.enterpriseID, f.project.ID, UploadInput{
		FileName:    "big.pdf",
		ContentType: "application/pdf",
		SizeBytes:   11 * 1024 * 1024,
		Payload:     bytes.NewReader([]byte("x")),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadRollsBackObjectOnRowFailure(t *testing.T) {
	f := newDocumentsFixture(t)
	f.store.createErr = gorm.ErrInvalidData

	_, err := f.svc.Upload(context.Background(), f.userID, f.enterpriseID, f.project.ID, UploadInput{
		FileName:    "prospectus.pdf",
		ContentType: "application/pdf",
		SizeBytes:   12,
		Payload:     bytes.NewReader([]byte("pdf contents")),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(f.storage.deleted) != 1 {
		t.Fatalf("expected the orphaned object to be deleted, got %v", f.storage.deleted)
	}
	if len(f.storage.written) != 0 {
		t.Fatal("expected no objects left behind")
	}
}

func TestUploadCrossTenantIsNotFound(t *testing.T) {
	f := newDocumentsFixture(t)

	_, err := f.svc.Upload(context.Background(), f.userID, uuid.New(), f.project.ID, UploadInput{
		FileName:    "prospectus.pdf",
		ContentType: "application/pdf",
		SizeBytes:   12,
		Payload:     bytes.NewReader([]byte("pdf contents")),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRemovesRowAndObject(t *testing.T) {
	f := newDocumentsFixture(t)
	ctx := context.Background()

	dto, err := f.svc.Upload(ctx, f.userID, f.enterpriseID, f.project.ID, UploadInput{
		FileName:    "prospectus.pdf",
		ContentType: "application/pdf",
		SizeBytes:   12,
		Payload:     bytes.NewReader([]byte("pdf contents")),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := f.svc.Delete(ctx, f.enterpriseID, f.project.ID, dto.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(f.storage.written) != 0 {
		t.Fatal("expected stored object removed")
	}

	docs, err := f.svc.List(ctx, f.enterpriseID, f.project.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}
