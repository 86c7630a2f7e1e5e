package memberships

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightvault/rwa-console-backend/pkg/db/models"
	"github.com/brightvault/rwa-console-backend/pkg/enums"
)

// AddMemberInput grants an existing user a role on a project.
type AddMemberInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required"`
}

// MemberWithUser mixes membership metadata with the associated user profile.
type MemberWithUser struct {
	MembershipID uuid.UUID         `json:"membership_id"`
	ProjectID    uuid.UUID         `json:"project_id"`
	UserID       uuid.UUID         `json:"user_id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Role         enums.ProjectRole `json:"role"`
	RoleLabel    string            `json:"role_label"`
	JoinedAt     time.Time         `json:"joined_at"`
}

type memberWithUserRow struct {
	models.ProjectMembership
	UserEmail string `gorm:"column:user_email"`
	UserName  string `gorm:"column:user_name"`
}

func memberRowsToDTO(rows []memberWithUserRow) []MemberWithUser {
	out := make([]MemberWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, MemberWithUser{
			MembershipID: row.ID,
			ProjectID:    row.ProjectID,
			UserID:       row.UserID,
			Email:        row.UserEmail,
			Name:         row.UserName,
			Role:         row.Role,
			RoleLabel:    row.Role.Label(),
			JoinedAt:     row.CreatedAt,
		})
	}
	return out
}
