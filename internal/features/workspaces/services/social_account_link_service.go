package workspaces_services

import (
	"fmt"

	"poststack-backend/internal/apperrors"
	social_accounts "poststack-backend/internal/features/social_accounts"
	users_interfaces "poststack-backend/internal/features/users/interfaces"
	users_models "poststack-backend/internal/features/users/models"
	workspaces_dto "poststack-backend/internal/features/workspaces/dto"
	workspaces_interfaces "poststack-backend/internal/features/workspaces/interfaces"
	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/features/workspaces/permissions"

	"github.com/google/uuid"
)

type SocialAccountLinkService struct {
	linkRepository        workspaces_interfaces.SocialAccountLinkRepository
	membershipRepository  workspaces_interfaces.MembershipRepository
	workspaceRepository   workspaces_interfaces.WorkspaceRepository
	socialAccountVerifier workspaces_interfaces.SocialAccountVerifier
	auditLogWriter        users_interfaces.AuditLogWriter
}

func NewSocialAccountLinkService(
	linkRepository workspaces_interfaces.SocialAccountLinkRepository,
	membershipRepository workspaces_interfaces.MembershipRepository,
	workspaceRepository workspaces_interfaces.WorkspaceRepository,
	socialAccountVerifier workspaces_interfaces.SocialAccountVerifier,
	auditLogWriter users_interfaces.AuditLogWriter,
) *SocialAccountLinkService {
	return &SocialAccountLinkService{
		linkRepository:        linkRepository,
		membershipRepository:  membershipRepository,
		workspaceRepository:   workspaceRepository,
		socialAccountVerifier: socialAccountVerifier,
		auditLogWriter:        auditLogWriter,
	}
}

// LinkAccount attaches one of the caller's social accounts to a
// workspace. The account must belong to the caller and hold a live
// token. An inactive link from an earlier unlink is reactivated in
// place, keeping the original row id; an active one is a conflict.
func (s *SocialAccountLinkService) LinkAccount(
	workspaceID uuid.UUID,
	request *workspaces_dto.LinkAccountRequestDTO,
	user *users_models.User,
) (*workspaces_dto.LinkedAccountResponseDTO, error) {
	membership, err := s.requireMembership(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(membership.Role, permissions.CapabilityManageSocialAccounts); err != nil {
		return nil, err
	}

	account, err := s.socialAccountVerifier.VerifyOwnership(request.SocialAccountID, user.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.linkRepository.GetLinkAnyState(workspaceID, request.SocialAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing link: %w", err)
	}

	var link *workspaces_models.SocialAccountLink

	switch {
	case existing != nil && existing.IsActive:
		return nil, apperrors.NewConflictError(
			"social account link",
			existing.ID.String(),
			"social account is already linked to this workspace",
		)

	case existing != nil:
		existing.Reactivate(user.ID)

		if err := s.linkRepository.UpdateLink(existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate link: %w", err)
		}

		link = existing

	default:
		link = &workspaces_models.SocialAccountLink{
			ID:              uuid.New(),
			WorkspaceID:     workspaceID,
			SocialAccountID: request.SocialAccountID,
			LinkedBy:        user.ID,
			IsActive:        true,
		}

		if err := s.linkRepository.CreateLink(link); err != nil {
			return nil, fmt.Errorf("failed to link social account: %w", err)
		}
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Social account linked to workspace: %s (%s)", account.Username, account.Platform),
		&user.ID,
		&workspaceID,
	)

	dto := s.toLinkedAccountDTO(link)
	s.enrichLinkedAccountDTO(dto, account)

	return dto, nil
}

// UnlinkAccount soft-deletes an active link.
func (s *SocialAccountLinkService) UnlinkAccount(
	workspaceID uuid.UUID,
	socialAccountID uuid.UUID,
	user *users_models.User,
) error {
	membership, err := s.requireMembership(workspaceID, user.ID)
	if err != nil {
		return err
	}

	if err := permissions.RequirePermission(membership.Role, permissions.CapabilityManageSocialAccounts); err != nil {
		return err
	}

	link, err := s.linkRepository.GetLinkAnyState(workspaceID, socialAccountID)
	if err != nil {
		return fmt.Errorf("failed to get link: %w", err)
	}

	if link == nil || !link.IsActive {
		return apperrors.NewNotFoundError("social account link", socialAccountID.String())
	}

	link.Deactivate()

	if err := s.linkRepository.UpdateLink(link); err != nil {
		return fmt.Errorf("failed to unlink social account: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Social account unlinked from workspace: %s", socialAccountID),
		&user.ID,
		&workspaceID,
	)

	return nil
}

// GetLinkedAccounts lists the workspace's active links. Platform and
// username come from the social account records; an enrichment failure
// is logged and the listing still returns.
func (s *SocialAccountLinkService) GetLinkedAccounts(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.GetLinkedAccountsResponseDTO, error) {
	membership, err := s.requireMembership(workspaceID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := permissions.RequirePermission(membership.Role, permissions.CapabilityViewWorkspaceDetails); err != nil {
		return nil, err
	}

	links, err := s.linkRepository.GetActiveLinksByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get linked accounts: %w", err)
	}

	accountIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		accountIDs = append(accountIDs, l.SocialAccountID)
	}

	accountsByID := make(map[uuid.UUID]*social_accounts.SocialAccount, len(accountIDs))

	accounts, err := s.socialAccountVerifier.GetAccountsByIDs(accountIDs)
	if err != nil {
		log.Error("Failed to enrich linked accounts with account details",
			"workspaceId", workspaceID, "error", err)
	} else {
		for _, a := range accounts {
			accountsByID[a.ID] = a
		}
	}

	linked := make([]workspaces_dto.LinkedAccountResponseDTO, 0, len(links))
	for _, l := range links {
		dto := s.toLinkedAccountDTO(l)

		if account, ok := accountsByID[l.SocialAccountID]; ok {
			s.enrichLinkedAccountDTO(dto, account)
		}

		linked = append(linked, *dto)
	}

	return &workspaces_dto.GetLinkedAccountsResponseDTO{Accounts: linked}, nil
}

func (s *SocialAccountLinkService) toLinkedAccountDTO(
	link *workspaces_models.SocialAccountLink,
) *workspaces_dto.LinkedAccountResponseDTO {
	return &workspaces_dto.LinkedAccountResponseDTO{
		LinkID:          link.ID,
		SocialAccountID: link.SocialAccountID,
		LinkedBy:        link.LinkedBy,
		LinkedAt:        link.LinkedAt,
	}
}

func (s *SocialAccountLinkService) enrichLinkedAccountDTO(
	dto *workspaces_dto.LinkedAccountResponseDTO,
	account *social_accounts.SocialAccount,
) {
	dto.Platform = string(account.Platform)
	dto.Username = account.Username

	if !account.TokenExpiresAt.IsZero() {
		expiresAt := account.TokenExpiresAt
		dto.TokenExpiresAt = &expiresAt
	}
}

func (s *SocialAccountLinkService) requireMembership(
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
