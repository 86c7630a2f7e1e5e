package enums

import "fmt"

// ProjectStatus labels a project's lifecycle position after creation.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "DRAFT"
	ProjectStatusReview     ProjectStatus = "REVIEW"
	ProjectStatusReviewing  ProjectStatus = "REVIEWING"
	ProjectStatusDeveloping ProjectStatus = "DEVELOPING"
	ProjectStatusTesting    ProjectStatus = "TESTING"
	ProjectStatusReady      ProjectStatus = "READY"
	ProjectStatusLive       ProjectStatus = "LIVE"
	ProjectStatusActive     ProjectStatus = "ACTIVE"
	ProjectStatusRejected   ProjectStatus = "REJECTED"
	ProjectStatusArchived   ProjectStatus = "ARCHIVED"
)

var validProjectStatuses = []ProjectStatus{
	ProjectStatusDraft,
	ProjectStatusReview,
	ProjectStatusReviewing,
	ProjectStatusDeveloping,
	ProjectStatusTesting,
	ProjectStatusReady,
	ProjectStatusLive,
	ProjectStatusActive,
	ProjectStatusRejected,
	ProjectStatusArchived,
}

// String implements fmt.Stringer.
func (p ProjectStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProjectStatus.
func (p ProjectStatus) IsValid() bool {
	for _, candidate := range validProjectStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProjectStatus converts raw input into a ProjectStatus.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	for _, candidate := range validProjectStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid project status %q", value)
}

// LifecycleStage marks creation-wizard progress on the project record.
type LifecycleStage string

const (
	LifecycleStageCreatingInProgress LifecycleStage = "CreatingInProgress"
	LifecycleStageCreatingCompleted  LifecycleStage = "CreatingCompleted"
)

// String implements fmt.Stringer.
func (l LifecycleStage) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LifecycleStage.
func (l LifecycleStage) IsValid() bool {
	return l == LifecycleStageCreatingInProgress || l == LifecycleStageCreatingCompleted
}
