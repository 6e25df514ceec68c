package workspaces_services

import (
	"sync"

	"poststack-backend/internal/features/audit_logs"
	"poststack-backend/internal/features/notifications"
	social_accounts "poststack-backend/internal/features/social_accounts"
	users_services "poststack-backend/internal/features/users/services"
	workspaces_repositories "poststack-backend/internal/features/workspaces/repositories"
)

var (
	workspaceService         *WorkspaceService
	membershipService        *MembershipService
	socialAccountLinkService *SocialAccountLinkService

	servicesOnce sync.Once
)

func initServices() {
	workspaceRepository := workspaces_repositories.GetWorkspaceRepository()
	membershipRepository := workspaces_repositories.GetMembershipRepository()
	linkRepository := workspaces_repositories.GetSocialAccountLinkRepository()
	auditLogService := audit_logs.GetAuditLogService()

	workspaceService = NewWorkspaceService(
		workspaceRepository,
		membershipRepository,
		linkRepository,
		auditLogService,
	)

	membershipService = NewMembershipService(
		membershipRepository,
		workspaceRepository,
		users_services.GetUserService(),
		notifications.GetMembershipNotifier(),
		auditLogService,
	)

	socialAccountLinkService = NewSocialAccountLinkService(
		linkRepository,
		membershipRepository,
		workspaceRepository,
		social_accounts.GetSocialAccountService(),
		auditLogService,
	)
}

func GetWorkspaceService() *WorkspaceService {
	servicesOnce.Do(initServices)
	return workspaceService
}

func GetMembershipService() *MembershipService {
	servicesOnce.Do(initServices)
	return membershipService
}

func GetSocialAccountLinkService() *SocialAccountLinkService {
	servicesOnce.Do(initServices)
	return socialAccountLinkService
}
