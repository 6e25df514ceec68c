// Package permissions holds the role-capability matrix and the role
// hierarchy predicates. Everything here is a pure lookup over the role
// enum; no state, no side effects.
package permissions

import (
	"poststack-backend/internal/apperrors"
	users_enums "poststack-backend/internal/features/users/enums"
)

type Capability string

const (
	CapabilityCreateWorkspace      Capability = "CREATE_WORKSPACE"
	CapabilityUpdateWorkspace      Capability = "UPDATE_WORKSPACE"
	CapabilityDeleteWorkspace      Capability = "DELETE_WORKSPACE"
	CapabilityInviteMembers        Capability = "INVITE_MEMBERS"
	CapabilityRemoveMembers        Capability = "REMOVE_MEMBERS"
	CapabilityUpdateMemberRoles    Capability = "UPDATE_MEMBER_ROLES"
	CapabilityManageSocialAccounts Capability = "MANAGE_SOCIAL_ACCOUNTS"
	CapabilityViewMembers          Capability = "VIEW_MEMBERS"
	CapabilityViewWorkspaceDetails Capability = "VIEW_WORKSPACE_DETAILS"
	CapabilitySwitchWorkspace      Capability = "SWITCH_WORKSPACE"
)

// AllCapabilities lists every capability in matrix order.
var AllCapabilities = []Capability{
	CapabilityCreateWorkspace,
	CapabilityUpdateWorkspace,
	CapabilityDeleteWorkspace,
	CapabilityInviteMembers,
	CapabilityRemoveMembers,
	CapabilityUpdateMemberRoles,
	CapabilityManageSocialAccounts,
	CapabilityViewMembers,
	CapabilityViewWorkspaceDetails,
	CapabilitySwitchWorkspace,
}

var rolePermissions = map[users_enums.WorkspaceRole]map[Capability]bool{
	users_enums.WorkspaceRoleOwner: {
		CapabilityCreateWorkspace:      true,
		CapabilityUpdateWorkspace:      true,
		CapabilityDeleteWorkspace:      true,
		CapabilityInviteMembers:        true,
		CapabilityRemoveMembers:        true,
		CapabilityUpdateMemberRoles:    true,
		CapabilityManageSocialAccounts: true,
		CapabilityViewMembers:          true,
		CapabilityViewWorkspaceDetails: true,
		CapabilitySwitchWorkspace:      true,
	},
	users_enums.WorkspaceRoleManager: {
		CapabilityCreateWorkspace:      true,
		CapabilityUpdateWorkspace:      true,
		CapabilityDeleteWorkspace:      false,
		CapabilityInviteMembers:        true,
		CapabilityRemoveMembers:        true,
		CapabilityUpdateMemberRoles:    true,
		CapabilityManageSocialAccounts: true,
		CapabilityViewMembers:          true,
		CapabilityViewWorkspaceDetails: true,
		CapabilitySwitchWorkspace:      true,
	},
	users_enums.WorkspaceRoleEditor: {
		CapabilityCreateWorkspace:      true,
		CapabilityUpdateWorkspace:      false,
		CapabilityDeleteWorkspace:      false,
		CapabilityInviteMembers:        false,
		CapabilityRemoveMembers:        false,
		CapabilityUpdateMemberRoles:    false,
		CapabilityManageSocialAccounts: false,
		CapabilityViewMembers:          true,
		CapabilityViewWorkspaceDetails: true,
		CapabilitySwitchWorkspace:      true,
	},
	users_enums.WorkspaceRoleViewer: {
		CapabilityCreateWorkspace:      false,
		CapabilityUpdateWorkspace:      false,
		CapabilityDeleteWorkspace:      false,
		CapabilityInviteMembers:        false,
		CapabilityRemoveMembers:        false,
		CapabilityUpdateMemberRoles:    false,
		CapabilityManageSocialAccounts: false,
		CapabilityViewMembers:          true,
		CapabilityViewWorkspaceDetails: true,
		CapabilitySwitchWorkspace:      true,
	},
}

func HasPermission(role users_enums.WorkspaceRole, capability Capability) bool {
	capabilities, ok := rolePermissions[role]
	if !ok {
		return false
	}

	return capabilities[capability]
}

// RequirePermission returns a typed AuthorizationError carrying the
// missing capability and the actor's role.
func RequirePermission(role users_enums.WorkspaceRole, capability Capability) error {
	if HasPermission(role, capability) {
		return nil
	}

	return apperrors.NewAuthorizationError(
		"insufficient permissions for this workspace operation",
		string(capability),
		string(role),
	)
}

// PermissionsFor lists the capabilities granted to a role, in matrix
// order. Used for the switch-workspace context payload.
func PermissionsFor(role users_enums.WorkspaceRole) []Capability {
	granted := make([]Capability, 0, len(AllCapabilities))

	for _, capability := range AllCapabilities {
		if HasPermission(role, capability) {
			granted = append(granted, capability)
		}
	}

	return granted
}
