package workspaces_controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"poststack-backend/internal/features/social_accounts"
	users_enums "poststack-backend/internal/features/users/enums"
	users_middleware "poststack-backend/internal/features/users/middleware"
	users_models "poststack-backend/internal/features/users/models"
	users_services "poststack-backend/internal/features/users/services"
	workspaces_dto "poststack-backend/internal/features/workspaces/dto"
	workspaces_models "poststack-backend/internal/features/workspaces/models"
	workspaces_services "poststack-backend/internal/features/workspaces/services"
	workspaces_testing "poststack-backend/internal/features/workspaces/testing"
	test_utils "poststack-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// controllerFixture wires the three controllers into a router behind the
// real auth middleware, with every dependency running in memory.
type controllerFixture struct {
	router         *gin.Engine
	userService    *users_services.UserService
	userDirectory  *workspaces_testing.FakeUserDirectory
	workspaceRepo  *workspaces_testing.FakeWorkspaceRepository
	membershipRepo *workspaces_testing.FakeMembershipRepository
	linkRepo       *workspaces_testing.FakeSocialAccountLinkRepository
	verifier       *workspaces_testing.FakeSocialAccountVerifier
	notifier       *workspaces_testing.RecordingNotifier
}

func newControllerFixture() *controllerFixture {
	gin.SetMode(gin.TestMode)

	membershipRepo := workspaces_testing.NewFakeMembershipRepository()
	workspaceRepo := workspaces_testing.NewFakeWorkspaceRepository(membershipRepo)
	linkRepo := workspaces_testing.NewFakeSocialAccountLinkRepository()
	userDirectory := workspaces_testing.NewFakeUserDirectory()
	verifier := workspaces_testing.NewFakeSocialAccountVerifier()
	notifier := &workspaces_testing.RecordingNotifier{}
	auditLog := &workspaces_testing.RecordingAuditLogWriter{}

	workspaceService := workspaces_services.NewWorkspaceService(
		workspaceRepo, membershipRepo, linkRepo, auditLog,
	)
	membershipService := workspaces_services.NewMembershipService(
		membershipRepo, workspaceRepo, userDirectory, notifier, auditLog,
	)
	linkService := workspaces_services.NewSocialAccountLinkService(
		linkRepo, membershipRepo, workspaceRepo, verifier, auditLog,
	)
	userService := users_services.NewUserService(userDirectory, "test-secret", auditLog)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(users_middleware.AuthMiddleware(userService))

	(&WorkspaceController{workspaceService: workspaceService}).RegisterRoutes(protected)
	(&MembershipController{membershipService: membershipService}).RegisterRoutes(protected)
	(&SocialAccountLinkController{linkService: linkService}).RegisterRoutes(protected)

	return &controllerFixture{
		router:         router,
		userService:    userService,
		userDirectory:  userDirectory,
		workspaceRepo:  workspaceRepo,
		membershipRepo: membershipRepo,
		linkRepo:       linkRepo,
		verifier:       verifier,
		notifier:       notifier,
	}
}

// signUpUser registers a user in the directory and returns a bearer
// header signed by the same service the middleware validates against.
func (f *controllerFixture) signUpUser(t *testing.T, name string) (*users_models.User, string) {
	t.Helper()

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                name + "@example.com",
		Name:                 name,
		Status:               users_enums.UserStatusActive,
		PasswordCreationTime: time.Now().UTC().Truncate(time.Second),
	}
	f.userDirectory.Add(user)

	signIn, err := f.userService.GenerateAccessToken(user)
	require.NoError(t, err)

	return user, "Bearer " + signIn.Token
}

func (f *controllerFixture) seedWorkspace(
	owner *users_models.User,
	name string,
	isDefault bool,
) *workspaces_models.Workspace {
	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: owner.ID,
		IsDefault: isDefault,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	f.workspaceRepo.Workspaces[workspace.ID] = workspace

	f.seedMembership(workspace.ID, owner.ID, users_enums.WorkspaceRoleOwner)

	return workspace
}

func (f *controllerFixture) seedMembership(
	workspaceID uuid.UUID,
	userID uuid.UUID,
	role users_enums.WorkspaceRole,
) *workspaces_models.WorkspaceMembership {
	membership := &workspaces_models.WorkspaceMembership{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        role,
		IsActive:    true,
		JoinedAt:    time.Now().UTC(),
	}
	f.membershipRepo.Memberships[membership.ID] = membership

	return membership
}

func Test_WorkspaceEndpoints_CreateAndList(t *testing.T) {
	fixture := newControllerFixture()
	_, token := fixture.signUpUser(t, "alice")

	var created workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, fixture.router, "/api/v1/workspaces", token,
		&workspaces_dto.CreateWorkspaceRequestDTO{Name: "Marketing"},
		http.StatusOK, &created,
	)
	assert.Equal(t, "Marketing", created.Name)
	assert.True(t, created.IsDefault)
	require.NotNil(t, created.UserRole)
	assert.Equal(t, users_enums.WorkspaceRoleOwner, *created.UserRole)

	var list workspaces_dto.ListWorkspacesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router, "/api/v1/workspaces", token, http.StatusOK, &list,
	)
	require.Len(t, list.Workspaces, 1)
	assert.Equal(t, created.ID, list.Workspaces[0].ID)

	var fetched workspaces_dto.WorkspaceResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s", created.ID), token,
		http.StatusOK, &fetched,
	)
	assert.Equal(t, created.Name, fetched.Name)
}

// Each service error type must surface as its own HTTP status at the
// boundary.
func Test_WorkspaceEndpoints_ErrorStatusMapping(t *testing.T) {
	fixture := newControllerFixture()
	alice, aliceToken := fixture.signUpUser(t, "alice")
	_, malloryToken := fixture.signUpUser(t, "mallory")

	workspace := fixture.seedWorkspace(alice, "Marketing", true)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "duplicate name is a conflict",
			run: func(t *testing.T) {
				test_utils.MakePostRequest(
					t, fixture.router, "/api/v1/workspaces", aliceToken,
					&workspaces_dto.CreateWorkspaceRequestDTO{Name: "marketing"},
					http.StatusConflict,
				)
			},
		},
		{
			name: "malformed workspace id is a bad request",
			run: func(t *testing.T) {
				test_utils.MakeGetRequest(
					t, fixture.router, "/api/v1/workspaces/not-a-uuid", aliceToken,
					http.StatusBadRequest,
				)
			},
		},
		{
			name: "unknown workspace is not found",
			run: func(t *testing.T) {
				test_utils.MakeGetRequest(
					t, fixture.router,
					fmt.Sprintf("/api/v1/workspaces/%s", uuid.New()), aliceToken,
					http.StatusNotFound,
				)
			},
		},
		{
			name: "non-member access is forbidden",
			run: func(t *testing.T) {
				test_utils.MakeGetRequest(
					t, fixture.router,
					fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID), malloryToken,
					http.StatusForbidden,
				)
			},
		},
		{
			name: "deleting the default workspace is unprocessable",
			run: func(t *testing.T) {
				test_utils.MakeDeleteRequest(
					t, fixture.router,
					fmt.Sprintf("/api/v1/workspaces/%s", workspace.ID), aliceToken,
					http.StatusUnprocessableEntity,
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run(t)
		})
	}
}

func Test_MembershipEndpoints_InviteChangeRemove(t *testing.T) {
	fixture := newControllerFixture()
	alice, aliceToken := fixture.signUpUser(t, "alice")
	bob, _ := fixture.signUpUser(t, "bob")

	workspace := fixture.seedWorkspace(alice, "Marketing", true)

	var invited workspaces_dto.InviteMemberResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), aliceToken,
		&workspaces_dto.InviteMemberRequestDTO{
			Email:  bob.Email,
			Role:   users_enums.WorkspaceRoleEditor,
			Notify: true,
		},
		http.StatusOK, &invited,
	)
	assert.Equal(t, bob.ID, invited.UserID)
	assert.Equal(t, users_enums.WorkspaceRoleEditor, invited.Role)
	assert.True(t, invited.Notified)

	// inviting an active member again conflicts
	test_utils.MakePostRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), aliceToken,
		&workspaces_dto.InviteMemberRequestDTO{
			Email: bob.Email,
			Role:  users_enums.WorkspaceRoleViewer,
		},
		http.StatusConflict,
	)

	// inviting an unknown email is not found
	test_utils.MakePostRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), aliceToken,
		&workspaces_dto.InviteMemberRequestDTO{
			Email: "nobody@example.com",
			Role:  users_enums.WorkspaceRoleViewer,
		},
		http.StatusNotFound,
	)

	var members workspaces_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), aliceToken,
		http.StatusOK, &members,
	)
	require.Len(t, members.Members, 2)
	assert.Equal(t, alice.ID, members.Members[0].UserID)
	assert.Equal(t, bob.ID, members.Members[1].UserID)

	test_utils.MakePutRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspace.ID, bob.ID),
		aliceToken,
		&workspaces_dto.ChangeMemberRoleRequestDTO{Role: users_enums.WorkspaceRoleManager},
		http.StatusOK,
	)

	// changing your own role is rejected as a business rule
	test_utils.MakePutRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s/role", workspace.ID, alice.ID),
		aliceToken,
		&workspaces_dto.ChangeMemberRoleRequestDTO{Role: users_enums.WorkspaceRoleViewer},
		http.StatusUnprocessableEntity,
	)

	test_utils.MakeDeleteRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members/%s?notify=true", workspace.ID, bob.ID),
		aliceToken,
		http.StatusOK,
	)

	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), aliceToken,
		http.StatusOK, &members,
	)
	require.Len(t, members.Members, 1)
	assert.Equal(t, alice.ID, members.Members[0].UserID)
}

func Test_MembershipEndpoints_EditorCannotInvite(t *testing.T) {
	fixture := newControllerFixture()
	alice, _ := fixture.signUpUser(t, "alice")
	bob, bobToken := fixture.signUpUser(t, "bob")
	carol, _ := fixture.signUpUser(t, "carol")

	workspace := fixture.seedWorkspace(alice, "Marketing", true)
	fixture.seedMembership(workspace.ID, bob.ID, users_enums.WorkspaceRoleEditor)

	test_utils.MakePostRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/members", workspace.ID), bobToken,
		&workspaces_dto.InviteMemberRequestDTO{
			Email: carol.Email,
			Role:  users_enums.WorkspaceRoleViewer,
		},
		http.StatusForbidden,
	)
}

func Test_SocialAccountEndpoints_LinkAndUnlink(t *testing.T) {
	fixture := newControllerFixture()
	alice, aliceToken := fixture.signUpUser(t, "alice")

	workspace := fixture.seedWorkspace(alice, "Marketing", true)

	account := &social_accounts.SocialAccount{
		ID:             uuid.New(),
		UserID:         alice.ID,
		Platform:       social_accounts.SocialPlatformTwitter,
		Username:       "alice_posts",
		TokenExpiresAt: time.Now().UTC().Add(24 * time.Hour),
		IsActive:       true,
	}
	fixture.verifier.Accounts[account.ID] = account

	var linked workspaces_dto.LinkedAccountResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/social-accounts", workspace.ID), aliceToken,
		&workspaces_dto.LinkAccountRequestDTO{SocialAccountID: account.ID},
		http.StatusOK, &linked,
	)
	assert.Equal(t, account.ID, linked.SocialAccountID)
	assert.Equal(t, "alice_posts", linked.Username)

	// linking the same account twice conflicts
	test_utils.MakePostRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/social-accounts", workspace.ID), aliceToken,
		&workspaces_dto.LinkAccountRequestDTO{SocialAccountID: account.ID},
		http.StatusConflict,
	)

	var accounts workspaces_dto.GetLinkedAccountsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/social-accounts", workspace.ID), aliceToken,
		http.StatusOK, &accounts,
	)
	require.Len(t, accounts.Accounts, 1)

	test_utils.MakeDeleteRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/social-accounts/%s", workspace.ID, account.ID),
		aliceToken,
		http.StatusOK,
	)

	// unlinking an account that is no longer linked is not found
	test_utils.MakeDeleteRequest(
		t, fixture.router,
		fmt.Sprintf("/api/v1/workspaces/%s/social-accounts/%s", workspace.ID, account.ID),
		aliceToken,
		http.StatusNotFound,
	)
}

func Test_Endpoints_RequireAuthentication(t *testing.T) {
	fixture := newControllerFixture()

	test_utils.MakeGetRequest(
		t, fixture.router, "/api/v1/workspaces", "", http.StatusUnauthorized,
	)
	test_utils.MakeGetRequest(
		t, fixture.router, "/api/v1/workspaces", "Bearer not-a-token",
		http.StatusUnauthorized,
	)
}
