package users_services

import (
	"fmt"
	"time"

	"poststack-backend/internal/apperrors"
	users_dto "poststack-backend/internal/features/users/dto"
	users_enums "poststack-backend/internal/features/users/enums"
	users_interfaces "poststack-backend/internal/features/users/interfaces"
	users_models "poststack-backend/internal/features/users/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the user service needs. The gorm
// repository satisfies it in production; tests use an in-memory store.
type UserStore interface {
	CreateUser(user *users_models.User) error
	GetUserByEmail(email string) (*users_models.User, error)
	GetUserByID(userID uuid.UUID) (*users_models.User, error)
	GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error)
}

type UserService struct {
	userRepository UserStore
	jwtSecret      string
	auditLogWriter users_interfaces.AuditLogWriter
}

func NewUserService(
	userRepository UserStore,
	jwtSecret string,
	auditLogWriter users_interfaces.AuditLogWriter,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		jwtSecret:      jwtSecret,
		auditLogWriter: auditLogWriter,
	}
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return apperrors.NewConflictError(
			"user",
			existingUser.ID.String(),
			"user with this email already exists",
		)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                request.Email,
		Name:                 request.Name,
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User registered with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return nil
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, apperrors.NewNotFoundError("user", request.Email)
	}

	if !user.IsActiveUser() {
		return nil, apperrors.NewAuthorizationError("user account is deactivated", "", "")
	}

	if !user.HasPassword() {
		return nil, apperrors.NewAuthorizationError("password sign-in is not set up for this account", "", "")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, apperrors.NewAuthorizationError("password is incorrect", "", "")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User signed in with email: %s", user.Email),
		&user.ID,
		nil,
	)

	return response, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, apperrors.NewAuthorizationError("invalid token", "", "")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, apperrors.NewAuthorizationError("invalid token claims", "", "")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperrors.NewAuthorizationError("invalid token claims", "", "")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperrors.NewNotFoundError("user", userID.String())
	}

	if !user.IsActiveUser() {
		return nil, apperrors.NewAuthorizationError("user account is deactivated", "", "")
	}

	// Tokens issued before a password change are rejected.
	if passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64); ok {
		tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)

		tokenTimeSeconds := tokenPasswordTime.Truncate(time.Second)
		userTimeSeconds := user.PasswordCreationTime.Truncate(time.Second)

		if !tokenTimeSeconds.Equal(userTimeSeconds) {
			return nil, apperrors.NewAuthorizationError(
				"password has been changed, please sign in again", "", "",
			)
		}
	} else {
		return nil, apperrors.NewAuthorizationError(
			"invalid token claims: missing password creation time", "", "",
		)
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(
	user *users_models.User,
) (*users_dto.SignInResponseDTO, error) {
	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetUsersByIDs(userIDs []uuid.UUID) ([]*users_models.User, error) {
	return s.userRepository.GetUsersByIDs(userIDs)
}

func (s *UserService) GetCurrentUserProfile(
	user *users_models.User,
) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsActive:  user.IsActiveUser(),
		CreatedAt: user.CreatedAt,
	}
}
