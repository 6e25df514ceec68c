package users_enums

type WorkspaceRole string

const (
	WorkspaceRoleOwner   WorkspaceRole = "WORKSPACE_OWNER"
	WorkspaceRoleManager WorkspaceRole = "WORKSPACE_MANAGER"
	WorkspaceRoleEditor  WorkspaceRole = "WORKSPACE_EDITOR"
	WorkspaceRoleViewer  WorkspaceRole = "WORKSPACE_VIEWER"
)

// IsValid validates the WorkspaceRole
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleOwner, WorkspaceRoleManager, WorkspaceRoleEditor, WorkspaceRoleViewer:
		return true
	default:
		return false
	}
}

// Rank gives the total order over roles:
// viewer(1) < editor(2) < manager(3) < owner(4).
func (r WorkspaceRole) Rank() int {
	switch r {
	case WorkspaceRoleOwner:
		return 4
	case WorkspaceRoleManager:
		return 3
	case WorkspaceRoleEditor:
		return 2
	case WorkspaceRoleViewer:
		return 1
	default:
		return 0
	}
}
