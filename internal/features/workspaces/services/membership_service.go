package workspaces_services

import (
	"fmt"
	"sort"

	"poststack-backend/internal/apperrors"
	"poststack-backend/internal/features/notifications"
	users_interfaces "poststack-backend/internal/features/users/interfaces"
	users_models "poststack-backend/internal/features/users/models"
	workspaces_dto "poststack-backend/internal/features/workspaces/dto"
	workspaces_interfaces "poststack-backend/internal/features/workspaces/interfaces"
	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/features/workspaces/permissions"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository workspaces_interfaces.MembershipRepository
	workspaceRepository  workspaces_interfaces.WorkspaceRepository
	userDirectory        workspaces_interfaces.UserDirectory
	notifier             notifications.MembershipNotifier
	auditLogWriter       users_interfaces.AuditLogWriter
}

func NewMembershipService(
	membershipRepository workspaces_interfaces.MembershipRepository,
	workspaceRepository workspaces_interfaces.WorkspaceRepository,
	userDirectory workspaces_interfaces.UserDirectory,
	notifier notifications.MembershipNotifier,
	auditLogWriter users_interfaces.AuditLogWriter,
) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		workspaceRepository:  workspaceRepository,
		userDirectory:        userDirectory,
		notifier:             notifier,
		auditLogWriter:       auditLogWriter,
	}
}

// InviteMember adds a user to a workspace by email. An inactive
// membership left behind by an earlier removal is reactivated in place
// with the requested role, keeping the original row id; an active one is
// a conflict. The notify flag is the caller's choice and is independent
// of the persistence outcome.
func (s *MembershipService) InviteMember(
	workspaceID uuid.UUID,
	request *workspaces_dto.InviteMemberRequestDTO,
	inviter *users_models.User,
) (*workspaces_dto.InviteMemberResponseDTO, error) {
	if !request.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown workspace role")
	}

	inviterRole, err := s.requireActiveMembership(workspaceID, inviter.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(inviterRole.Role, permissions.CapabilityInviteMembers); err != nil {
		return nil, err
	}

	if !permissions.CanAssignRole(inviterRole.Role, request.Role) {
		return nil, apperrors.NewAuthorizationError(
			fmt.Sprintf("your role cannot assign the %s role", request.Role),
			string(permissions.CapabilityInviteMembers),
			string(inviterRole.Role),
		)
	}

	targetUser, err := s.userDirectory.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user by email: %w", err)
	}

	if targetUser == nil {
		return nil, apperrors.NewNotFoundError("user", request.Email)
	}

	if targetUser.ID == inviter.ID {
		return nil, apperrors.NewBusinessLogicError("you cannot invite yourself")
	}

	existing, err := s.membershipRepository.GetMembershipAnyState(targetUser.ID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	var membership *workspaces_models.WorkspaceMembership
	reactivated := false

	switch {
	case existing != nil && existing.IsActive:
		return nil, apperrors.NewConflictError(
			"membership",
			existing.ID.String(),
			"user is already a member of this workspace",
		)

	case existing != nil:
		existing.Reactivate(request.Role)

		if err := s.membershipRepository.UpdateMembership(existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate membership: %w", err)
		}

		membership = existing
		reactivated = true

	default:
		membership = &workspaces_models.WorkspaceMembership{
			ID:          uuid.New(),
			UserID:      targetUser.ID,
			WorkspaceID: workspaceID,
			Role:        request.Role,
			IsActive:    true,
		}

		if err := s.membershipRepository.CreateMembership(membership); err != nil {
			return nil, fmt.Errorf("failed to add member: %w", err)
		}
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User added to workspace: %s as %s", targetUser.Email, request.Role),
		&inviter.ID,
		&workspaceID,
	)

	if request.Notify {
		s.notifier.NotifyMemberInvited(workspaceID, targetUser.ID, request.Role)
	}

	return &workspaces_dto.InviteMemberResponseDTO{
		MembershipID: membership.ID,
		UserID:       targetUser.ID,
		Role:         membership.Role,
		Reactivated:  reactivated,
		Notified:     request.Notify,
	}, nil
}

// ChangeMemberRole requires both sides of the hierarchy check: the actor
// must be able to manage the member's current role AND to assign the new
// one. Changing your own role is refused for every role, owners
// included.
func (s *MembershipService) ChangeMemberRole(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	request *workspaces_dto.ChangeMemberRoleRequestDTO,
	actor *users_models.User,
) error {
	if !request.Role.IsValid() {
		return apperrors.NewValidationError("role", "unknown workspace role")
	}

	actorMembership, err := s.requireActiveMembership(workspaceID, actor.ID)
	if err != nil {
		return err
	}

	if err := permissions.RequirePermission(actorMembership.Role, permissions.CapabilityUpdateMemberRoles); err != nil {
		return err
	}

	if memberUserID == actor.ID {
		return apperrors.NewBusinessLogicError("you cannot change your own role")
	}

	targetMembership, err := s.membershipRepository.GetActiveMembership(memberUserID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get target membership: %w", err)
	}

	if targetMembership == nil {
		return apperrors.NewNotFoundError("membership", memberUserID.String())
	}

	if !permissions.CanManageRole(actorMembership.Role, targetMembership.Role) {
		return apperrors.NewAuthorizationError(
			fmt.Sprintf("your role cannot manage a member with the %s role", targetMembership.Role),
			string(permissions.CapabilityUpdateMemberRoles),
			string(actorMembership.Role),
		)
	}

	if !permissions.CanAssignRole(actorMembership.Role, request.Role) {
		return apperrors.NewAuthorizationError(
			fmt.Sprintf("your role cannot assign the %s role", request.Role),
			string(permissions.CapabilityUpdateMemberRoles),
			string(actorMembership.Role),
		)
	}

	oldRole := targetMembership.Role
	targetMembership.Role = request.Role

	if err := s.membershipRepository.UpdateMembership(targetMembership); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Member role changed from %s to %s", oldRole, request.Role),
		&actor.ID,
		&workspaceID,
	)

	if request.Notify {
		s.notifier.NotifyMemberRoleChanged(workspaceID, memberUserID, oldRole, request.Role)
	}

	return nil
}

// RemoveMember soft-deletes another member's membership. Removing
// yourself is refused: leaving is a separate operation with its own
// last-owner protection.
func (s *MembershipService) RemoveMember(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	notify bool,
	actor *users_models.User,
) error {
	actorMembership, err := s.requireActiveMembership(workspaceID, actor.ID)
	if err != nil {
		return err
	}

	if err := permissions.RequirePermission(actorMembership.Role, permissions.CapabilityRemoveMembers); err != nil {
		return err
	}

	if memberUserID == actor.ID {
		return apperrors.NewBusinessLogicError(
			"you cannot remove yourself, leave the workspace instead",
		)
	}

	targetMembership, err := s.membershipRepository.GetActiveMembership(memberUserID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get target membership: %w", err)
	}

	if targetMembership == nil {
		return apperrors.NewNotFoundError("membership", memberUserID.String())
	}

	if !permissions.CanManageRole(actorMembership.Role, targetMembership.Role) {
		return apperrors.NewAuthorizationError(
			fmt.Sprintf("your role cannot remove a member with the %s role", targetMembership.Role),
			string(permissions.CapabilityRemoveMembers),
			string(actorMembership.Role),
		)
	}

	targetMembership.Deactivate()

	if err := s.membershipRepository.UpdateMembership(targetMembership); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Member removed from workspace: %s", memberUserID),
		&actor.ID,
		&workspaceID,
	)

	if notify {
		s.notifier.NotifyMemberRemoved(workspaceID, memberUserID)
	}

	return nil
}

// GetMembers lists active memberships, ordered role-rank descending then
// joined-at ascending. User details are display enrichment: a directory
// failure is logged and the listing still returns.
func (s *MembershipService) GetMembers(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.GetMembersResponseDTO, error) {
	membership, err := s.requireActiveMembership(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(membership.Role, permissions.CapabilityViewMembers); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepository.GetActiveMembershipsByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace members: %w", err)
	}

	sort.SliceStable(memberships, func(i, j int) bool {
		if memberships[i].Role.Rank() != memberships[j].Role.Rank() {
			return memberships[i].Role.Rank() > memberships[j].Role.Rank()
		}

		return memberships[i].JoinedAt.Before(memberships[j].JoinedAt)
	})

	userIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		userIDs = append(userIDs, m.UserID)
	}

	usersByID := make(map[uuid.UUID]*users_models.User, len(userIDs))

	users, err := s.userDirectory.GetUsersByIDs(userIDs)
	if err != nil {
		log.Error("Failed to enrich member listing with user details",
			"workspaceId", workspaceID, "error", err)
	} else {
		for _, u := range users {
			usersByID[u.ID] = u
		}
	}

	members := make([]workspaces_dto.WorkspaceMemberResponseDTO, 0, len(memberships))
	for _, m := range memberships {
		member := workspaces_dto.WorkspaceMemberResponseDTO{
			ID:       m.ID,
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}

		if u, ok := usersByID[m.UserID]; ok {
			member.Email = u.Email
			member.Name = u.Name
		}

		members = append(members, member)
	}

	return &workspaces_dto.GetMembersResponseDTO{Members: members}, nil
}

// requireActiveMembership resolves the caller's active membership,
// checking the workspace itself is active first.
func (s *MembershipService) requireActiveMembership(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	workspace, err := s.workspaceRepository.GetActiveWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NewNotFoundError("workspace", workspaceID.String())
	}

	membership, err := s.membershipRepository.GetActiveMembership(userID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return nil, apperrors.NewAuthorizationError(
			"you are not a member of this workspace", "", "",
		)
	}

	return membership, nil
}
