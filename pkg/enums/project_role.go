package enums

import "fmt"

// ProjectRole represents a project-level permissions role.
type ProjectRole string

const (
	ProjectRoleCreator  ProjectRole = "CREATOR"
	ProjectRoleLegal    ProjectRole = "LEGAL"
	ProjectRoleAdminOps ProjectRole = "ADMIN_OPS"
	ProjectRoleAuditor  ProjectRole = "AUDITOR"
)

var validProjectRoles = []ProjectRole{
	ProjectRoleCreator,
	ProjectRoleLegal,
	ProjectRoleAdminOps,
	ProjectRoleAuditor,
}

// Label returns the human-readable role name shown in the console.
func (p ProjectRole) Label() string {
	switch p {
	case ProjectRoleCreator:
		return "Creator (Issuer)"
	case ProjectRoleLegal:
		return "Legal"
	case ProjectRoleAdminOps:
		return "Admin & Ops"
	case ProjectRoleAuditor:
		return "Auditor"
	}
	return string(p)
}

// String implements fmt.Stringer.
func (p ProjectRole) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProjectRole.
func (p ProjectRole) IsValid() bool {
	for _, candidate := range validProjectRoles {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProjectRole converts raw input into a ProjectRole.
func ParseProjectRole(value string) (ProjectRole, error) {
	for _, candidate := range validProjectRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid project role %q", value)
}
