package social_accounts

import (
	"sync"

	"poststack-backend/internal/features/audit_logs"
)

var (
	accountService    *SocialAccountService
	accountController *SocialAccountController
	once              sync.Once
)

func setup() {
	accountService = NewSocialAccountService(
		&SocialAccountRepository{},
		audit_logs.GetAuditLogService(),
	)
	accountController = &SocialAccountController{accountService}
}

func GetSocialAccountService() *SocialAccountService {
	once.Do(setup)
	return accountService
}

func GetSocialAccountController() *SocialAccountController {
	once.Do(setup)
	return accountController
}
