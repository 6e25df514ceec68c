package users_services

import (
	"sync"

	"poststack-backend/internal/config"
	"poststack-backend/internal/features/audit_logs"
	users_repositories "poststack-backend/internal/features/users/repositories"
)

var (
	userService *UserService
	once        sync.Once
)

// GetUserService wires the service lazily so importing this package does
// not force configuration loading (tests construct services directly).
func GetUserService() *UserService {
	once.Do(func() {
		userService = NewUserService(
			users_repositories.GetUserRepository(),
			config.GetEnv().JwtSecret,
			audit_logs.GetAuditLogService(),
		)
	})

	return userService
}
