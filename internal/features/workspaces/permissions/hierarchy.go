package permissions

import (
	users_enums "poststack-backend/internal/features/users/enums"
)

// IsHigher reports whether role a strictly outranks role b.
func IsHigher(a, b users_enums.WorkspaceRole) bool {
	return a.Rank() > b.Rank()
}

func IsEqualOrHigher(a, b users_enums.WorkspaceRole) bool {
	return a.Rank() >= b.Rank()
}

// HighestOf returns the highest-ranked role in the slice, or an empty
// role for an empty slice.
func HighestOf(roles []users_enums.WorkspaceRole) users_enums.WorkspaceRole {
	var highest users_enums.WorkspaceRole

	for _, role := range roles {
		if role.Rank() > highest.Rank() {
			highest = role
		}
	}

	return highest
}

// CanManageRole reports whether an actor may alter (change role of,
// remove) an existing member holding targetRole. Owners manage anyone,
// including other owners. Managers manage only editors and viewers; a
// manager may not manage another manager. Everyone else must strictly
// outrank the target.
func CanManageRole(actorRole, targetRole users_enums.WorkspaceRole) bool {
	if actorRole == users_enums.WorkspaceRoleOwner {
		return true
	}

	if targetRole == users_enums.WorkspaceRoleOwner {
		return false
	}

	if actorRole == users_enums.WorkspaceRoleManager {
		return targetRole == users_enums.WorkspaceRoleEditor ||
			targetRole == users_enums.WorkspaceRoleViewer
	}

	return IsHigher(actorRole, targetRole)
}

// CanAssignRole reports whether an actor may grant roleToAssign. Owners
// assign any role (including owner, for co-ownership). Managers assign
// only editor and viewer. Everyone else must strictly outrank the role
// being granted.
func CanAssignRole(actorRole, roleToAssign users_enums.WorkspaceRole) bool {
	if actorRole == users_enums.WorkspaceRoleOwner {
		return true
	}

	if actorRole == users_enums.WorkspaceRoleManager {
		return roleToAssign == users_enums.WorkspaceRoleEditor ||
			roleToAssign == users_enums.WorkspaceRoleViewer
	}

	return IsHigher(actorRole, roleToAssign)
}
