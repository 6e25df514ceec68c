package workspaces_dto

import (
	"time"

	users_enums "poststack-backend/internal/features/users/enums"
	"poststack-backend/internal/features/workspaces/permissions"

	"github.com/google/uuid"
)

// Workspace DTOs
type CreateWorkspaceRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateWorkspaceRequestDTO struct {
	Name     *string         `json:"name"`
	Settings *map[string]any `json:"settings"`
}

type WorkspaceResponseDTO struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	CreatedBy uuid.UUID      `json:"createdBy"`
	IsDefault bool           `json:"isDefault"`
	Settings  map[string]any `json:"settings,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`

	// Role of the requesting user in this workspace.
	UserRole *users_enums.WorkspaceRole `json:"userRole,omitempty"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []WorkspaceResponseDTO `json:"workspaces"`
}

// WorkspaceContextDTO is the payload of a workspace switch: everything
// the boundary layer attaches to subsequent requests.
type WorkspaceContextDTO struct {
	WorkspaceID      uuid.UUID                 `json:"workspaceId"`
	Name             string                    `json:"name"`
	Role             users_enums.WorkspaceRole `json:"role"`
	Permissions      []permissions.Capability  `json:"permissions"`
	LinkedAccountIDs []uuid.UUID               `json:"linkedAccountIds"`
}

// Membership DTOs
type InviteMemberRequestDTO struct {
	Email  string                    `json:"email"  binding:"required,email"`
	Role   users_enums.WorkspaceRole `json:"role"   binding:"required"`
	Notify bool                      `json:"notify"`
}

type InviteMemberResponseDTO struct {
	MembershipID uuid.UUID                 `json:"membershipId"`
	UserID       uuid.UUID                 `json:"userId"`
	Role         users_enums.WorkspaceRole `json:"role"`
	Reactivated  bool                      `json:"reactivated"`
	Notified     bool                      `json:"notified"`
}

type ChangeMemberRoleRequestDTO struct {
	Role   users_enums.WorkspaceRole `json:"role" binding:"required"`
	Notify bool                      `json:"notify"`
}

type RemoveMemberRequestDTO struct {
	Notify bool `form:"notify" json:"notify"`
}

type WorkspaceMemberResponseDTO struct {
	ID       uuid.UUID                 `json:"id"`
	UserID   uuid.UUID                 `json:"userId"`
	Email    string                    `json:"email,omitempty"`
	Name     string                    `json:"name,omitempty"`
	Role     users_enums.WorkspaceRole `json:"role"`
	JoinedAt time.Time                 `json:"joinedAt"`
}

type GetMembersResponseDTO struct {
	Members []WorkspaceMemberResponseDTO `json:"members"`
}

// Social account link DTOs
type LinkAccountRequestDTO struct {
	SocialAccountID uuid.UUID `json:"socialAccountId" binding:"required"`
}

type LinkedAccountResponseDTO struct {
	LinkID          uuid.UUID  `json:"linkId"`
	SocialAccountID uuid.UUID  `json:"socialAccountId"`
	Platform        string     `json:"platform,omitempty"`
	Username        string     `json:"username,omitempty"`
	TokenExpiresAt  *time.Time `json:"tokenExpiresAt,omitempty"`
	LinkedBy        uuid.UUID  `json:"linkedBy"`
	LinkedAt        time.Time  `json:"linkedAt"`
}

type GetLinkedAccountsResponseDTO struct {
	Accounts []LinkedAccountResponseDTO `json:"accounts"`
}
