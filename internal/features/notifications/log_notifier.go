package notifications

import (
	users_enums "poststack-backend/internal/features/users/enums"
	"poststack-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

// LogNotifier writes membership events to the structured log. It stands
// in for the delivery channels (email, in-app) owned by other services.
type LogNotifier struct{}

func (n *LogNotifier) NotifyMemberInvited(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	role users_enums.WorkspaceRole,
) {
	log.Info("Member invited",
		"workspaceId", workspaceID,
		"userId", memberUserID,
		"role", role,
	)
}

func (n *LogNotifier) NotifyMemberRoleChanged(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	oldRole users_enums.WorkspaceRole,
	newRole users_enums.WorkspaceRole,
) {
	log.Info("Member role changed",
		"workspaceId", workspaceID,
		"userId", memberUserID,
		"oldRole", oldRole,
		"newRole", newRole,
	)
}

func (n *LogNotifier) NotifyMemberRemoved(workspaceID uuid.UUID, memberUserID uuid.UUID) {
	log.Info("Member removed",
		"workspaceId", workspaceID,
		"userId", memberUserID,
	)
}
