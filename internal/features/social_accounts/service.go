package social_accounts

import (
	"fmt"
	"time"

	"poststack-backend/internal/apperrors"
	users_interfaces "poststack-backend/internal/features/users/interfaces"
	users_models "poststack-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type SocialAccountService struct {
	accountRepository SocialAccountStore
	auditLogWriter    users_interfaces.AuditLogWriter
}

func NewSocialAccountService(
	accountRepository SocialAccountStore,
	auditLogWriter users_interfaces.AuditLogWriter,
) *SocialAccountService {
	return &SocialAccountService{
		accountRepository: accountRepository,
		auditLogWriter:    auditLogWriter,
	}
}

func (s *SocialAccountService) RegisterAccount(
	request *RegisterAccountRequestDTO,
	user *users_models.User,
) (*SocialAccount, error) {
	if !request.Platform.IsValid() {
		return nil, apperrors.NewValidationError("platform", "unknown social platform")
	}

	account := &SocialAccount{
		ID:             uuid.New(),
		UserID:         user.ID,
		Platform:       request.Platform,
		Username:       request.Username,
		TokenExpiresAt: request.TokenExpiresAt.UTC(),
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.accountRepository.CreateAccount(account); err != nil {
		return nil, fmt.Errorf("failed to register social account: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Social account registered: %s on %s", account.Username, account.Platform),
		&user.ID,
		nil,
	)

	return account, nil
}

func (s *SocialAccountService) GetUserAccounts(
	user *users_models.User,
) (*ListAccountsResponseDTO, error) {
	accounts, err := s.accountRepository.GetActiveAccountsByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get social accounts: %w", err)
	}

	return &ListAccountsResponseDTO{Accounts: accounts}, nil
}

func (s *SocialAccountService) DeleteAccount(accountID uuid.UUID, user *users_models.User) error {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to get social account: %w", err)
	}

	if account == nil || !account.IsActive {
		return apperrors.NewNotFoundError("social account", accountID.String())
	}

	if account.UserID != user.ID {
		return apperrors.NewAuthorizationError(
			"social account belongs to another user", "", "",
		)
	}

	account.IsActive = false

	if err := s.accountRepository.UpdateAccount(account); err != nil {
		return fmt.Errorf("failed to delete social account: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Social account removed: %s on %s", account.Username, account.Platform),
		&user.ID,
		nil,
	)

	return nil
}

// VerifyOwnership checks that the account exists, belongs to the given
// user and its token has not expired. The workspace link manager calls
// this before linking an account to a workspace.
func (s *SocialAccountService) VerifyOwnership(
	accountID uuid.UUID,
	userID uuid.UUID,
) (*SocialAccount, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get social account: %w", err)
	}

	if account == nil || !account.IsActive {
		return nil, apperrors.NewNotFoundError("social account", accountID.String())
	}

	if account.UserID != userID {
		return nil, apperrors.NewAuthorizationError(
			"social account belongs to another user", "", "",
		)
	}

	if account.IsExpired(time.Now().UTC()) {
		return nil, apperrors.NewBusinessLogicError(
			"social account token has expired, reconnect the account first",
		)
	}

	return account, nil
}

func (s *SocialAccountService) GetAccountsByIDs(
	accountIDs []uuid.UUID,
) ([]*SocialAccount, error) {
	return s.accountRepository.GetAccountsByIDs(accountIDs)
}
