package workspaces_controllers

import (
	"net/http"

	"poststack-backend/internal/apperrors"
	users_middleware "poststack-backend/internal/features/users/middleware"
	workspaces_dto "poststack-backend/internal/features/workspaces/dto"
	workspaces_services "poststack-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SocialAccountLinkController struct {
	linkService *workspaces_services.SocialAccountLinkService
}

func (c *SocialAccountLinkController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:workspaceId/social-accounts", c.LinkAccount)
	router.GET("/workspaces/:workspaceId/social-accounts", c.GetLinkedAccounts)
	router.DELETE("/workspaces/:workspaceId/social-accounts/:accountId", c.UnlinkAccount)
}

// LinkAccount
// @Summary Link a social account to a workspace
// @Description The account must belong to the caller and hold a live token
// @Tags social-account-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.LinkAccountRequestDTO true "Account to link"
// @Success 200 {object} workspaces_dto.LinkedAccountResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /workspaces/{workspaceId}/social-accounts [post]
func (c *SocialAccountLinkController) LinkAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	var request workspaces_dto.LinkAccountRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.linkService.LinkAccount(workspaceID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetLinkedAccounts
// @Summary List a workspace's linked social accounts
// @Tags social-account-links
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.GetLinkedAccountsResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/social-accounts [get]
func (c *SocialAccountLinkController) GetLinkedAccounts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	response, err := c.linkService.GetLinkedAccounts(workspaceID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UnlinkAccount
// @Summary Unlink a social account from a workspace
// @Tags social-account-links
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param accountId path string true "Social account ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/social-accounts/{accountId} [delete]
func (c *SocialAccountLinkController) UnlinkAccount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	accountID, err := uuid.Parse(ctx.Param("accountId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid social account ID"})
		return
	}

	if err := c.linkService.UnlinkAccount(workspaceID, accountID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Social account unlinked successfully"})
}
