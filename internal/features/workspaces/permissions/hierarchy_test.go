package permissions

import (
	"testing"

	users_enums "poststack-backend/internal/features/users/enums"

	"github.com/stretchr/testify/assert"
)

func Test_IsHigher(t *testing.T) {
	assert.True(t, IsHigher(users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleManager))
	assert.True(t, IsHigher(users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleEditor))
	assert.True(t, IsHigher(users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleViewer))

	assert.False(t, IsHigher(users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleOwner))
	assert.False(t, IsHigher(users_enums.WorkspaceRoleViewer, users_enums.WorkspaceRoleEditor))
}

func Test_IsEqualOrHigher(t *testing.T) {
	assert.True(t, IsEqualOrHigher(users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleOwner))
	assert.True(t, IsEqualOrHigher(users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleViewer))
	assert.False(t, IsEqualOrHigher(users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleManager))
}

func Test_HighestOf(t *testing.T) {
	assert.Equal(t, users_enums.WorkspaceRoleManager, HighestOf([]users_enums.WorkspaceRole{
		users_enums.WorkspaceRoleViewer,
		users_enums.WorkspaceRoleManager,
		users_enums.WorkspaceRoleEditor,
	}))

	assert.Equal(t, users_enums.WorkspaceRole(""), HighestOf(nil))
}

func Test_CanManageRole(t *testing.T) {
	tests := []struct {
		name       string
		actorRole  users_enums.WorkspaceRole
		targetRole users_enums.WorkspaceRole
		expected   bool
	}{
		{"owner manages another owner", users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleOwner, true},
		{"owner manages manager", users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleManager, true},
		{"owner manages viewer", users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleViewer, true},

		{"manager cannot manage owner", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleOwner, false},
		{"manager cannot manage another manager", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleManager, false},
		{"manager manages editor", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleEditor, true},
		{"manager manages viewer", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleViewer, true},

		{"editor cannot manage editor", users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleEditor, false},
		{"editor manages viewer", users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleViewer, true},
		{"viewer cannot manage viewer", users_enums.WorkspaceRoleViewer, users_enums.WorkspaceRoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanManageRole(tt.actorRole, tt.targetRole))
		})
	}
}

func Test_CanAssignRole(t *testing.T) {
	tests := []struct {
		name         string
		actorRole    users_enums.WorkspaceRole
		roleToAssign users_enums.WorkspaceRole
		expected     bool
	}{
		{"owner assigns owner for co-ownership", users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleOwner, true},
		{"owner assigns manager", users_enums.WorkspaceRoleOwner, users_enums.WorkspaceRoleManager, true},

		{"manager cannot assign owner", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleOwner, false},
		{"manager cannot assign manager", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleManager, false},
		{"manager assigns editor", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleEditor, true},
		{"manager assigns viewer", users_enums.WorkspaceRoleManager, users_enums.WorkspaceRoleViewer, true},

		{"editor cannot assign editor", users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleEditor, false},
		{"editor assigns viewer", users_enums.WorkspaceRoleEditor, users_enums.WorkspaceRoleViewer, true},
		{"viewer cannot assign anything", users_enums.WorkspaceRoleViewer, users_enums.WorkspaceRoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAssignRole(tt.actorRole, tt.roleToAssign))
		})
	}
}
