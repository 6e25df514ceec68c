package workspaces_models

import (
	"time"

	users_enums "poststack-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// WorkspaceMembership binds a user to a workspace with a ranked role.
// Its lifecycle is a two-state machine {active, inactive}: removal and
// leaving deactivate the row, a later invite reactivates it in place so
// the row id is stable across rejoin.
type WorkspaceMembership struct {
	ID          uuid.UUID                 `json:"id"          gorm:"column:id"`
	UserID      uuid.UUID                 `json:"userId"      gorm:"column:user_id"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"column:workspace_id"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"column:role"`
	IsActive    bool                      `json:"isActive"    gorm:"column:is_active"`
	JoinedAt    time.Time                 `json:"joinedAt"    gorm:"column:joined_at"`
}

func (WorkspaceMembership) TableName() string {
	return "workspace_memberships"
}

func (m *WorkspaceMembership) Deactivate() {
	m.IsActive = false
}

// Reactivate restores an inactive membership with a fresh role and
// join time, reusing the original row id.
func (m *WorkspaceMembership) Reactivate(role users_enums.WorkspaceRole) {
	m.Role = role
	m.IsActive = true
	m.JoinedAt = time.Now().UTC()
}
