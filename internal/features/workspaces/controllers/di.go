package workspaces_controllers

import (
	"sync"

	"poststack-backend/internal/features/audit_logs"
	workspaces_services "poststack-backend/internal/features/workspaces/services"
)

var (
	workspaceController         *WorkspaceController
	membershipController        *MembershipController
	socialAccountLinkController *SocialAccountLinkController

	controllersOnce sync.Once
)

func initControllers() {
	workspaceController = &WorkspaceController{
		workspaceService: workspaces_services.GetWorkspaceService(),
		auditLogService:  audit_logs.GetAuditLogService(),
	}
	membershipController = &MembershipController{
		membershipService: workspaces_services.GetMembershipService(),
	}
	socialAccountLinkController = &SocialAccountLinkController{
		linkService: workspaces_services.GetSocialAccountLinkService(),
	}
}

func GetWorkspaceController() *WorkspaceController {
	controllersOnce.Do(initControllers)
	return workspaceController
}

func GetMembershipController() *MembershipController {
	controllersOnce.Do(initControllers)
	return membershipController
}

func GetSocialAccountLinkController() *SocialAccountLinkController {
	controllersOnce.Do(initControllers)
	return socialAccountLinkController
}
