package workspaces_testing

import (
	"strings"
	"time"

	"poststack-backend/internal/apperrors"
	social_accounts "poststack-backend/internal/features/social_accounts"
	users_enums "poststack-backend/internal/features/users/enums"
	users_models "poststack-backend/internal/features/users/models"
	workspaces_models "poststack-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// In-memory fakes for the workspace service interfaces. They mirror the
// soft-delete semantics of the real repositories so service behavior can
// be exercised without a database.

type FakeWorkspaceRepository struct {
	Workspaces map[uuid.UUID]*workspaces_models.Workspace

	// Shared with the membership fake so atomic create lands in both.
	Memberships *FakeMembershipRepository
}

func NewFakeWorkspaceRepository(memberships *FakeMembershipRepository) *FakeWorkspaceRepository {
	return &FakeWorkspaceRepository{
		Workspaces:  make(map[uuid.UUID]*workspaces_models.Workspace),
		Memberships: memberships,
	}
}

func (r *FakeWorkspaceRepository) CreateWorkspaceWithOwner(
	workspace *workspaces_models.Workspace,
	membership *workspaces_models.WorkspaceMembership,
) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}
	workspace.UpdatedAt = workspace.CreatedAt

	copied := *workspace
	r.Workspaces[workspace.ID] = &copied

	membership.WorkspaceID = workspace.ID

	return r.Memberships.CreateMembership(membership)
}

func (r *FakeWorkspaceRepository) GetActiveWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, ok := r.Workspaces[workspaceID]
	if !ok || !workspace.IsActive {
		return nil, nil
	}

	copied := *workspace
	return &copied, nil
}

func (r *FakeWorkspaceRepository) GetActiveWorkspaceOwnedByUserWithName(
	userID uuid.UUID,
	name string,
) (*workspaces_models.Workspace, error) {
	for _, workspace := range r.Workspaces {
		if workspace.IsActive && workspace.CreatedBy == userID &&
			strings.EqualFold(workspace.Name, name) {
			copied := *workspace
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *FakeWorkspaceRepository) CountActiveWorkspacesOwnedBy(userID uuid.UUID) (int64, error) {
	var count int64
	for _, workspace := range r.Workspaces {
		if workspace.IsActive && workspace.CreatedBy == userID {
			count++
		}
	}

	return count, nil
}

func (r *FakeWorkspaceRepository) GetActiveWorkspacesForUser(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var result []*workspaces_models.Workspace

	for _, membership := range r.Memberships.Memberships {
		if membership.UserID != userID || !membership.IsActive {
			continue
		}

		workspace, ok := r.Workspaces[membership.WorkspaceID]
		if !ok || !workspace.IsActive {
			continue
		}

		copied := *workspace
		result = append(result, &copied)
	}

	return result, nil
}

func (r *FakeWorkspaceRepository) UpdateWorkspace(workspace *workspaces_models.Workspace) error {
	workspace.UpdatedAt = time.Now().UTC()

	copied := *workspace
	r.Workspaces[workspace.ID] = &copied

	return nil
}

type FakeMembershipRepository struct {
	Memberships map[uuid.UUID]*workspaces_models.WorkspaceMembership
}

func NewFakeMembershipRepository() *FakeMembershipRepository {
	return &FakeMembershipRepository{
		Memberships: make(map[uuid.UUID]*workspaces_models.WorkspaceMembership),
	}
}

func (r *FakeMembershipRepository) CreateMembership(
	membership *workspaces_models.WorkspaceMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	copied := *membership
	r.Memberships[membership.ID] = &copied

	return nil
}

func (r *FakeMembershipRepository) GetActiveMembership(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	membership, err := r.GetMembershipAnyState(userID, workspaceID)
	if err != nil || membership == nil || !membership.IsActive {
		return nil, err
	}

	return membership, nil
}

func (r *FakeMembershipRepository) GetMembershipAnyState(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	for _, membership := range r.Memberships {
		if membership.UserID == userID && membership.WorkspaceID == workspaceID {
			copied := *membership
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *FakeMembershipRepository) GetActiveMembershipsByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceMembership, error) {
	var result []*workspaces_models.WorkspaceMembership

	for _, membership := range r.Memberships {
		if membership.WorkspaceID == workspaceID && membership.IsActive {
			copied := *membership
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *FakeMembershipRepository) CountActiveMembershipsByRole(
	workspaceID uuid.UUID,
	role users_enums.WorkspaceRole,
) (int64, error) {
	var count int64
	for _, membership := range r.Memberships {
		if membership.WorkspaceID == workspaceID && membership.IsActive &&
			membership.Role == role {
			count++
		}
	}

	return count, nil
}

func (r *FakeMembershipRepository) UpdateMembership(
	membership *workspaces_models.WorkspaceMembership,
) error {
	copied := *membership
	r.Memberships[membership.ID] = &copied

	return nil
}

type FakeSocialAccountLinkRepository struct {
	Links map[uuid.UUID]*workspaces_models.SocialAccountLink
}

func NewFakeSocialAccountLinkRepository() *FakeSocialAccountLinkRepository {
	return &FakeSocialAccountLinkRepository{
		Links: make(map[uuid.UUID]*workspaces_models.SocialAccountLink),
	}
}

func (r *FakeSocialAccountLinkRepository) CreateLink(
	link *workspaces_models.SocialAccountLink,
) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	if link.LinkedAt.IsZero() {
		link.LinkedAt = time.Now().UTC()
	}

	copied := *link
	r.Links[link.ID] = &copied

	return nil
}

func (r *FakeSocialAccountLinkRepository) GetLinkAnyState(
	workspaceID, socialAccountID uuid.UUID,
) (*workspaces_models.SocialAccountLink, error) {
	for _, link := range r.Links {
		if link.WorkspaceID == workspaceID && link.SocialAccountID == socialAccountID {
			copied := *link
			return &copied, nil
		}
	}

	return nil, nil
}

func (r *FakeSocialAccountLinkRepository) GetActiveLinksByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.SocialAccountLink, error) {
	var result []*workspaces_models.SocialAccountLink

	for _, link := range r.Links {
		if link.WorkspaceID == workspaceID && link.IsActive {
			copied := *link
			result = append(result, &copied)
		}
	}

	return result, nil
}

func (r *FakeSocialAccountLinkRepository) UpdateLink(
	link *workspaces_models.SocialAccountLink,
) error {
	copied := *link
	r.Links[link.ID] = &copied

	return nil
}

// FakeUserDirectory resolves users from a fixed in-memory set.
type FakeUserDirectory struct {
	Users map[uuid.UUID]*users_models.User
}

func NewFakeUserDirectory(users ...*users_models.User) *FakeUserDirectory {
	directory := &FakeUserDirectory{Users: make(map[uuid.UUID]*users_models.User)}
	for _, user := range users {
		directory.Users[user.ID] = user
	}

	return directory
}

func (d *FakeUserDirectory) Add(user *users_models.User) {
	d.Users[user.ID] = user
}

// CreateUser makes the directory usable as a user store in boundary tests.
func (d *FakeUserDirectory) CreateUser(user *users_models.User) error {
	d.Users[user.ID] = user
	return nil
}

func (d *FakeUserDirectory) GetUserByEmail(email string) (*users_models.User, error) {
	for _, user := range d.Users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}

	return nil, nil
}

func (d *FakeUserDirectory) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	user, ok := d.Users[userID]
	if !ok {
		return nil, nil
	}

	return user, nil
}

func (d *FakeUserDirectory) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	var result []*users_models.User
	for _, id := range userIDs {
		if user, ok := d.Users[id]; ok {
			result = append(result, user)
		}
	}

	return result, nil
}

// FakeSocialAccountVerifier returns canned verification results.
type FakeSocialAccountVerifier struct {
	Accounts map[uuid.UUID]*social_accounts.SocialAccount

	// When set, VerifyOwnership returns this error for the given account.
	VerifyErrors map[uuid.UUID]error
}

func NewFakeSocialAccountVerifier(
	accounts ...*social_accounts.SocialAccount,
) *FakeSocialAccountVerifier {
	verifier := &FakeSocialAccountVerifier{
		Accounts:     make(map[uuid.UUID]*social_accounts.SocialAccount),
		VerifyErrors: make(map[uuid.UUID]error),
	}
	for _, account := range accounts {
		verifier.Accounts[account.ID] = account
	}

	return verifier
}

func (v *FakeSocialAccountVerifier) VerifyOwnership(
	accountID uuid.UUID,
	userID uuid.UUID,
) (*social_accounts.SocialAccount, error) {
	if err, ok := v.VerifyErrors[accountID]; ok {
		return nil, err
	}

	account, ok := v.Accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("social account", accountID.String())
	}

	if account.UserID != userID {
		return nil, apperrors.NewAuthorizationError(
			"social account belongs to another user", "", "",
		)
	}

	return account, nil
}

func (v *FakeSocialAccountVerifier) GetAccountsByIDs(
	accountIDs []uuid.UUID,
) ([]*social_accounts.SocialAccount, error) {
	var result []*social_accounts.SocialAccount
	for _, id := range accountIDs {
		if account, ok := v.Accounts[id]; ok {
			result = append(result, account)
		}
	}

	return result, nil
}

// MembershipNotification records one notifier call.
type MembershipNotification struct {
	Kind        string
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	OldRole     users_enums.WorkspaceRole
	NewRole     users_enums.WorkspaceRole
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	Notifications []MembershipNotification
}

func (n *RecordingNotifier) NotifyMemberInvited(
	workspaceID uuid.UUID,
	userID uuid.UUID,
	role users_enums.WorkspaceRole,
) {
	n.Notifications = append(n.Notifications, MembershipNotification{
		Kind:        "invited",
		WorkspaceID: workspaceID,
		UserID:      userID,
		NewRole:     role,
	})
}

func (n *RecordingNotifier) NotifyMemberRoleChanged(
	workspaceID uuid.UUID,
	userID uuid.UUID,
	oldRole users_enums.WorkspaceRole,
	newRole users_enums.WorkspaceRole,
) {
	n.Notifications = append(n.Notifications, MembershipNotification{
		Kind:        "role_changed",
		WorkspaceID: workspaceID,
		UserID:      userID,
		OldRole:     oldRole,
		NewRole:     newRole,
	})
}

func (n *RecordingNotifier) NotifyMemberRemoved(workspaceID uuid.UUID, userID uuid.UUID) {
	n.Notifications = append(n.Notifications, MembershipNotification{
		Kind:        "removed",
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
}

// RecordingAuditLogWriter captures audit messages for assertions.
type RecordingAuditLogWriter struct {
	Messages []string
}

func (w *RecordingAuditLogWriter) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	w.Messages = append(w.Messages, message)
}
