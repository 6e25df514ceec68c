package users_middleware_test

import (
	"net/http"
	"testing"
	"time"

	users_enums "poststack-backend/internal/features/users/enums"
	users_middleware "poststack-backend/internal/features/users/middleware"
	users_models "poststack-backend/internal/features/users/models"
	users_services "poststack-backend/internal/features/users/services"
	workspaces_testing "poststack-backend/internal/features/workspaces/testing"
	test_utils "poststack-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type middlewareFixture struct {
	router      *gin.Engine
	userService *users_services.UserService
	directory   *workspaces_testing.FakeUserDirectory
}

func newMiddlewareFixture() *middlewareFixture {
	gin.SetMode(gin.TestMode)

	directory := workspaces_testing.NewFakeUserDirectory()
	userService := users_services.NewUserService(
		directory, "test-secret", &workspaces_testing.RecordingAuditLogWriter{},
	)

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(users_middleware.AuthMiddleware(userService))
	protected.GET("/whoami", func(ctx *gin.Context) {
		user, ok := users_middleware.GetUserFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"userId": user.ID.String()})
	})

	return &middlewareFixture{
		router:      router,
		userService: userService,
		directory:   directory,
	}
}

func (f *middlewareFixture) addUser(
	t *testing.T,
	name string,
	status users_enums.UserStatus,
) (*users_models.User, string) {
	t.Helper()

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                name + "@example.com",
		Name:                 name,
		Status:               status,
		PasswordCreationTime: time.Now().UTC().Truncate(time.Second),
	}
	f.directory.Add(user)

	signIn, err := f.userService.GenerateAccessToken(user)
	require.NoError(t, err)

	return user, signIn.Token
}

func Test_AuthMiddleware_ValidTokenResolvesUser(t *testing.T) {
	fixture := newMiddlewareFixture()
	user, token := fixture.addUser(t, "alice", users_enums.UserStatusActive)

	var response struct {
		UserID string `json:"userId"`
	}
	test_utils.MakeGetRequestAndUnmarshal(
		t, fixture.router, "/api/v1/whoami", "Bearer "+token,
		http.StatusOK, &response,
	)
	assert.Equal(t, user.ID.String(), response.UserID)
}

func Test_AuthMiddleware_RejectsBadCredentials(t *testing.T) {
	fixture := newMiddlewareFixture()
	_, token := fixture.addUser(t, "alice", users_enums.UserStatusActive)
	_, deactivatedToken := fixture.addUser(t, "bob", users_enums.UserStatusDeactivated)

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "not a bearer token", authHeader: "Token " + token},
		{name: "garbage token", authHeader: "Bearer not-a-jwt"},
		{name: "token for a deactivated user", authHeader: "Bearer " + deactivatedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test_utils.MakeGetRequest(
				t, fixture.router, "/api/v1/whoami", tt.authHeader,
				http.StatusUnauthorized,
			)
		})
	}
}

func Test_AuthMiddleware_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	fixture := newMiddlewareFixture()
	user, _ := fixture.addUser(t, "alice", users_enums.UserStatusActive)

	otherService := users_services.NewUserService(
		fixture.directory, "other-secret", &workspaces_testing.RecordingAuditLogWriter{},
	)
	signIn, err := otherService.GenerateAccessToken(user)
	require.NoError(t, err)

	test_utils.MakeGetRequest(
		t, fixture.router, "/api/v1/whoami", "Bearer "+signIn.Token,
		http.StatusUnauthorized,
	)
}
