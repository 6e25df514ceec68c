package users_controllers

import (
	"sync"

	users_services "poststack-backend/internal/features/users/services"
)

var (
	userController *UserController
	once           sync.Once
)

func GetUserController() *UserController {
	once.Do(func() {
		userController = &UserController{
			users_services.GetUserService(),
		}
	})

	return userController
}
