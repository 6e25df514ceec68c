package workspaces_interfaces

import (
	social_accounts "poststack-backend/internal/features/social_accounts"
	users_enums "poststack-backend/internal/features/users/enums"
	users_models "poststack-backend/internal/features/users/models"
	workspaces_models "poststack-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// WorkspaceRepository is the persistence surface for workspace rows.
// Nil results mean "not found"; errors are storage failures.
type WorkspaceRepository interface {
	CreateWorkspaceWithOwner(
		workspace *workspaces_models.Workspace,
		membership *workspaces_models.WorkspaceMembership,
	) error
	GetActiveWorkspaceByID(workspaceID uuid.UUID) (*workspaces_models.Workspace, error)
	GetActiveWorkspaceOwnedByUserWithName(
		userID uuid.UUID,
		name string,
	) (*workspaces_models.Workspace, error)
	CountActiveWorkspacesOwnedBy(userID uuid.UUID) (int64, error)
	GetActiveWorkspacesForUser(userID uuid.UUID) ([]*workspaces_models.Workspace, error)
	UpdateWorkspace(workspace *workspaces_models.Workspace) error
}

// MembershipRepository is the persistence surface for membership rows.
type MembershipRepository interface {
	CreateMembership(membership *workspaces_models.WorkspaceMembership) error
	GetActiveMembership(
		userID, workspaceID uuid.UUID,
	) (*workspaces_models.WorkspaceMembership, error)
	GetMembershipAnyState(
		userID, workspaceID uuid.UUID,
	) (*workspaces_models.WorkspaceMembership, error)
	GetActiveMembershipsByWorkspace(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.WorkspaceMembership, error)
	CountActiveMembershipsByRole(
		workspaceID uuid.UUID,
		role users_enums.WorkspaceRole,
	) (int64, error)
	UpdateMembership(membership *workspaces_models.WorkspaceMembership) error
}

// SocialAccountLinkRepository is the persistence surface for
// workspace-account link rows.
type SocialAccountLinkRepository interface {
	CreateLink(link *workspaces_models.SocialAccountLink) error
	GetLinkAnyState(
		workspaceID, socialAccountID uuid.UUID,
	) (*workspaces_models.SocialAccountLink, error)
	GetActiveLinksByWorkspace(
		workspaceID uuid.UUID,
	) ([]*workspaces_models.SocialAccountLink, error)
	UpdateLink(link *workspaces_models.SocialAccountLink) error
}

// UserDirectory resolves emails and ids to users; implemented by the
// users service.
type UserDirectory interface {
	GetUserByEmail(email string) (*users_models.User, error)
	GetUserByID(userID uuid.UUID) (*users_models.User, error)
	GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error)
}

// SocialAccountVerifier validates account ownership and expiry;
// implemented by the social accounts service.
type SocialAccountVerifier interface {
	VerifyOwnership(
		accountID uuid.UUID,
		userID uuid.UUID,
	) (*social_accounts.SocialAccount, error)
	GetAccountsByIDs(accountIDs []uuid.UUID) ([]*social_accounts.SocialAccount, error)
}
