package workspaces_services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"poststack-backend/internal/apperrors"
	users_enums "poststack-backend/internal/features/users/enums"
	users_interfaces "poststack-backend/internal/features/users/interfaces"
	users_models "poststack-backend/internal/features/users/models"
	workspaces_dto "poststack-backend/internal/features/workspaces/dto"
	workspaces_interfaces "poststack-backend/internal/features/workspaces/interfaces"
	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/features/workspaces/permissions"
	"poststack-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

const (
	workspaceNameMinLength = 1
	workspaceNameMaxLength = 100
)

type WorkspaceService struct {
	workspaceRepository  workspaces_interfaces.WorkspaceRepository
	membershipRepository workspaces_interfaces.MembershipRepository
	linkRepository       workspaces_interfaces.SocialAccountLinkRepository
	auditLogWriter       users_interfaces.AuditLogWriter
}

func NewWorkspaceService(
	workspaceRepository workspaces_interfaces.WorkspaceRepository,
	membershipRepository workspaces_interfaces.MembershipRepository,
	linkRepository workspaces_interfaces.SocialAccountLinkRepository,
	auditLogWriter users_interfaces.AuditLogWriter,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepository:  workspaceRepository,
		membershipRepository: membershipRepository,
		linkRepository:       linkRepository,
		auditLogWriter:       auditLogWriter,
	}
}

// Name bounds count runes, matching the DTO's binding:"max=100".
func validateWorkspaceName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	if utf8.RuneCountInString(trimmed) < workspaceNameMinLength {
		return "", apperrors.NewValidationError("name", "workspace name must not be empty")
	}

	if utf8.RuneCountInString(trimmed) > workspaceNameMaxLength {
		return "", apperrors.NewValidationError(
			"name",
			fmt.Sprintf("workspace name must be at most %d characters", workspaceNameMaxLength),
		)
	}

	return trimmed, nil
}

// CreateWorkspace creates a workspace and its founding owner membership
// as one atomic unit. The first workspace a user creates becomes their
// default workspace; a default workspace can never be deleted or left.
func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	creator *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	name, err := validateWorkspaceName(request.Name)
	if err != nil {
		return nil, err
	}

	duplicate, err := s.workspaceRepository.GetActiveWorkspaceOwnedByUserWithName(creator.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace name: %w", err)
	}

	if duplicate != nil {
		return nil, apperrors.NewConflictError(
			"workspace",
			duplicate.ID.String(),
			"you already own a workspace with this name",
		)
	}

	ownedCount, err := s.workspaceRepository.CountActiveWorkspacesOwnedBy(creator.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count owned workspaces: %w", err)
	}

	now := time.Now().UTC()

	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: creator.ID,
		IsDefault: ownedCount == 0,
		IsActive:  true,
		Settings:  workspaces_models.WorkspaceSettings{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	membership := &workspaces_models.WorkspaceMembership{
		ID:          uuid.New(),
		UserID:      creator.ID,
		WorkspaceID: workspace.ID,
		Role:        users_enums.WorkspaceRoleOwner,
		IsActive:    true,
		JoinedAt:    now,
	}

	if err := s.workspaceRepository.CreateWorkspaceWithOwner(workspace, membership); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&creator.ID,
		&workspace.ID,
	)

	ownerRole := users_enums.WorkspaceRoleOwner
	return &workspaces_dto.WorkspaceResponseDTO{
		ID:        workspace.ID,
		Name:      workspace.Name,
		CreatedBy: workspace.CreatedBy,
		IsDefault: workspace.IsDefault,
		Settings:  workspace.Settings,
		CreatedAt: workspace.CreatedAt,
		UserRole:  &ownerRole,
	}, nil
}

func (s *WorkspaceService) GetWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, role, err := s.requireWorkspaceAccess(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(role, permissions.CapabilityViewWorkspaceDetails); err != nil {
		return nil, err
	}

	return workspace, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.workspaceRepository.GetActiveWorkspacesForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workspaces: %w", err)
	}

	responses := make([]workspaces_dto.WorkspaceResponseDTO, 0, len(workspaces))
	for _, workspace := range workspaces {
		response := workspaces_dto.WorkspaceResponseDTO{
			ID:        workspace.ID,
			Name:      workspace.Name,
			CreatedBy: workspace.CreatedBy,
			IsDefault: workspace.IsDefault,
			CreatedAt: workspace.CreatedAt,
		}

		// Role enrichment is display-only; a lookup failure is logged
		// and must not abort the listing.
		membership, err := s.membershipRepository.GetActiveMembership(user.ID, workspace.ID)
		if err != nil {
			log.Error("Failed to resolve role for workspace listing",
				"workspaceId", workspace.ID, "userId", user.ID, "error", err)
		} else if membership != nil {
			role := membership.Role
			response.UserRole = &role
		}

		responses = append(responses, response)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{Workspaces: responses}, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, role, err := s.requireWorkspaceAccess(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(role, permissions.CapabilityUpdateWorkspace); err != nil {
		return nil, err
	}

	if request.Name != nil {
		name, err := validateWorkspaceName(*request.Name)
		if err != nil {
			return nil, err
		}

		workspace.Name = name
	}

	if request.Settings != nil {
		workspace.Settings = *request.Settings
	}

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Workspace updated: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, role, err := s.requireWorkspaceAccess(workspaceID, user.ID)
	if err != nil {
		return err
	}

	if err := permissions.RequirePermission(role, permissions.CapabilityDeleteWorkspace); err != nil {
		return err
	}

	if workspace.IsDefault {
		return apperrors.NewBusinessLogicError("the default workspace cannot be deleted")
	}

	workspace.Deactivate()

	if err := s.workspaceRepository.UpdateWorkspace(workspace); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

// LeaveWorkspace deactivates the caller's own membership. The last
// active owner cannot leave: ownership must be transferred or the
// workspace deleted first.
func (s *WorkspaceService) LeaveWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, err := s.workspaceRepository.GetActiveWorkspaceByID(workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return apperrors.NewNotFoundError("workspace", workspaceID.String())
	}

	membership, err := s.membershipRepository.GetActiveMembership(user.ID, workspaceID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return apperrors.NewNotFoundError("membership", user.ID.String())
	}

	if workspace.IsDefault {
		return apperrors.NewBusinessLogicError("the default workspace cannot be left")
	}

	if membership.Role == users_enums.WorkspaceRoleOwner {
		ownerCount, err := s.membershipRepository.CountActiveMembershipsByRole(
			workspaceID,
			users_enums.WorkspaceRoleOwner,
		)
		if err != nil {
			return fmt.Errorf("failed to count workspace owners: %w", err)
		}

		if ownerCount <= 1 {
			return apperrors.NewBusinessLogicError(
				"you are the last owner: transfer ownership or delete the workspace instead",
			)
		}
	}

	membership.Deactivate()

	if err := s.membershipRepository.UpdateMembership(membership); err != nil {
		return fmt.Errorf("failed to leave workspace: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Member left workspace: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

// SwitchWorkspace validates access and assembles the context the
// boundary layer attaches to subsequent requests.
func (s *WorkspaceService) SwitchWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.WorkspaceContextDTO, error) {
	workspace, role, err := s.requireWorkspaceAccess(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(role, permissions.CapabilitySwitchWorkspace); err != nil {
		return nil, err
	}

	linkedAccountIDs := make([]uuid.UUID, 0)

	// Linked-account enrichment is secondary: log failures, keep the
	// switch usable.
	links, err := s.linkRepository.GetActiveLinksByWorkspace(workspaceID)
	if err != nil {
		log.Error("Failed to load linked accounts for workspace switch",
			"workspaceId", workspaceID, "error", err)
	} else {
		for _, link := range links {
			linkedAccountIDs = append(linkedAccountIDs, link.SocialAccountID)
		}
	}

	return &workspaces_dto.WorkspaceContextDTO{
		WorkspaceID:      workspace.ID,
		Name:             workspace.Name,
		Role:             role,
		Permissions:      permissions.PermissionsFor(role),
		LinkedAccountIDs: linkedAccountIDs,
	}, nil
}

func (s *WorkspaceService) GetUserWorkspaceRole(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*users_enums.WorkspaceRole, error) {
	membership, err := s.membershipRepository.GetActiveMembership(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if membership == nil {
		return nil, nil
	}

	role := membership.Role

	return &role, nil
}

// requireWorkspaceAccess loads an active workspace and the caller's
// active role in it, mapping absence to the proper taxonomy error.
func (s *WorkspaceService) requireWorkspaceAccess(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*workspaces_models.Workspace, users_enums.WorkspaceRole, error) {
	workspace, err := s.workspaceRepository.GetActiveWorkspaceByID(workspaceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, "", apperrors.NewNotFoundError("workspace", workspaceID.String())
	}

	membership, err := s.membershipRepository.GetActiveMembership(userID, workspaceID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get membership: %w", err)
	}

	if membership == nil {
		return nil, "", apperrors.NewAuthorizationError(
			"you are not a member of this workspace", "", "",
		)
	}

	return workspace, membership.Role, nil
}
