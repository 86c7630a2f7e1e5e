package milestones

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
)

// MilestoneDTO is the API representation of a project milestone.
type MilestoneDTO struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sort_order"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps a milestone row to its DTO.
func FromModel(m *models.ProjectMilestone) *MilestoneDTO {
	return &MilestoneDTO{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Code:      m.Code,
		Title:     m.Title,
		SortOrder: m.SortOrder,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
