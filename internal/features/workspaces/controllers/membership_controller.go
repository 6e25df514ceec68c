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

type MembershipController struct {
	membershipService *workspaces_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/workspaces/:workspaceId/members", c.InviteMember)
	router.GET("/workspaces/:workspaceId/members", c.GetMembers)
	router.PUT("/workspaces/:workspaceId/members/:userId/role", c.ChangeMemberRole)
	router.DELETE("/workspaces/:workspaceId/members/:userId", c.RemoveMember)
}

// InviteMember
// @Summary Invite a user to a workspace
// @Description Add a user by email with a role the caller is allowed to assign
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.InviteMemberRequestDTO true "Invitation data"
// @Success 200 {object} workspaces_dto.InviteMemberResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [post]
func (c *MembershipController) InviteMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	var request workspaces_dto.InviteMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.membershipService.InviteMember(workspaceID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMembers
// @Summary List workspace members
// @Description Active members ordered by role rank, then join time
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.GetMembersResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	response, err := c.membershipService.GetMembers(workspaceID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChangeMemberRole
// @Summary Change a member's role
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param userId path string true "Member user ID"
// @Param request body workspaces_dto.ChangeMemberRoleRequestDTO true "New role"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /workspaces/{workspaceId}/members/{userId}/role [put]
func (c *MembershipController) ChangeMemberRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	memberUserID, ok := parseMemberUserID(ctx)
	if !ok {
		return
	}

	var request workspaces_dto.ChangeMemberRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.membershipService.ChangeMemberRole(workspaceID, memberUserID, &request, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member role updated successfully"})
}

// RemoveMember
// @Summary Remove a member from a workspace
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param workspaceId path string true "Workspace ID"
// @Param userId path string true "Member user ID"
// @Param notify query bool false "Notify the removed member"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /workspaces/{workspaceId}/members/{userId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, ok := parseWorkspaceID(ctx)
	if !ok {
		return
	}

	memberUserID, ok := parseMemberUserID(ctx)
	if !ok {
		return
	}

	var request workspaces_dto.RemoveMemberRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.membershipService.RemoveMember(workspaceID, memberUserID, request.Notify, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func parseMemberUserID(ctx *gin.Context) (uuid.UUID, bool) {
	memberUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, false
	}

	return memberUserID, true
}
