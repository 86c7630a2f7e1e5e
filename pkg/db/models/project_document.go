package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// ProjectDocument captures metadata for a file uploaded against a project's
// asset-details step. Rows are immutable once stored.
type ProjectDocument struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID   uuid.UUID             `gorm:"column:project_id;type:uuid;not null"`
	FileName    string                `gorm:"column:file_name;not null"`
	StorageKey  string                `gorm:"column:storage_key;not null;unique"`
	URL         string                `gorm:"column:url;not null"`
	SizeBytes   int64                 `gorm:"column:size_bytes;not null"`
	ContentType string                `gorm:"column:content_type;not null"`
	Status      enums.DocumentStatus  `gorm:"column:status;not null"`
	Origin      enums.DocumentOrigin  `gorm:"column:origin;not null"`
	UploadedBy  uuid.UUID             `gorm:"column:uploaded_by;type:uuid;not null"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
}
