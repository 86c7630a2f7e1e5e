package documents

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// UploadInput carries the file metadata and payload for an upload.
type UploadInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Payload     io.Reader
}

// DocumentDTO is the document payload returned to console clients.
type DocumentDTO struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromModel maps the persisted document to its DTO.
func FromModel(doc *models.ProjectDocument) *DocumentDTO {
	if doc == nil {
		return nil
	}
	return &DocumentDTO{
		ID:          doc.ID,
		ProjectID:   doc.ProjectID,
		FileName:    doc.FileName,
		URL:         doc.URL,
		SizeBytes:   doc.SizeBytes,
		ContentType: doc.ContentType,
		Status:      string(doc.Status),
		Origin:      string(doc.Origin),
		UploadedBy:  doc.UploadedBy,
		CreatedAt:   doc.CreatedAt,
	}
}
