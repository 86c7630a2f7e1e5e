package enums

// DocumentStatus tracks the upload lifecycle of a project document.
type DocumentStatus string

const (
	DocumentStatusPending DocumentStatus = "pending"
	DocumentStatusStored  DocumentStatus = "stored"
)

// IsValid reports whether the value is a known DocumentStatus.
func (d DocumentStatus) IsValid() bool {
	return d == DocumentStatusPending || d == DocumentStatusStored
}

// DocumentOrigin records where an upload came from.
type DocumentOrigin string

const (
	DocumentOriginConsole DocumentOrigin = "console"
	DocumentOriginImport  DocumentOrigin = "import"
)

// IsValid reports whether the value is a known DocumentOrigin.
func (d DocumentOrigin) IsValid() bool {
	return d == DocumentOriginConsole || d == DocumentOriginImport
}

// MilestoneStatus tracks progress of a seeded project milestone.
type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "PENDING"
	MilestoneStatusInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
)

// IsValid reports whether the value is a known MilestoneStatus.
func (m MilestoneStatus) IsValid() bool {
	switch m {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusCompleted:
		return true
	}
	return false
}
