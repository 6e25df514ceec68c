package notifications

import (
	users_enums "poststack-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// MembershipNotifier is the optional, fire-and-forget notification
// collaborator. Implementations must never block membership operations
// on delivery.
type MembershipNotifier interface {
	NotifyMemberInvited(
		workspaceID uuid.UUID,
		memberUserID uuid.UUID,
		role users_enums.WorkspaceRole,
	)
	NotifyMemberRoleChanged(
		workspaceID uuid.UUID,
		memberUserID uuid.UUID,
		oldRole users_enums.WorkspaceRole,
		newRole users_enums.WorkspaceRole,
	)
	NotifyMemberRemoved(workspaceID uuid.UUID, memberUserID uuid.UUID)
}
