package social_accounts

import (
	"net/http"

	"poststack-backend/internal/apperrors"
	users_middleware "poststack-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SocialAccountController struct {
	accountService *SocialAccountService
}

func (c *SocialAccountController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/social-accounts", c.RegisterAccount)
	router.GET("/social-accounts", c.GetAccounts)
	router.DELETE("/social-accounts/:id", c.DeleteAccount)
}

// RegisterAccount
// @Summary Register a social posting account
// @Tags social-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterAccountRequestDTO true "Account data"
// @Success 200 {object} SocialAccount
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /social-accounts [post]
func (c *SocialAccountController) RegisterAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request RegisterAccountRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	account, err := c.accountService.RegisterAccount(&request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, account)
}

// GetAccounts
// @Summary List the current user's social accounts
// @Tags social-accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListAccountsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /social-accounts [get]
func (c *SocialAccountController) GetAccounts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.accountService.GetUserAccounts(user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteAccount
// @Summary Remove a social account
// @Tags social-accounts
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /social-accounts/{id} [delete]
func (c *SocialAccountController) DeleteAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account ID"})
		return
	}

	if err := c.accountService.DeleteAccount(accountID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Social account removed successfully"})
}
