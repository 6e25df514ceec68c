package social_accounts

import (
	"testing"
	"time"

	"poststack-backend/internal/apperrors"
	users_models "poststack-backend/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountStore struct {
	accounts map[uuid.UUID]*SocialAccount
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[uuid.UUID]*SocialAccount)}
}

func (s *fakeAccountStore) CreateAccount(account *SocialAccount) error {
	s.accounts[account.ID] = account
	return nil
}

func (s *fakeAccountStore) GetAccountByID(accountID uuid.UUID) (*SocialAccount, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, nil
	}

	return account, nil
}

func (s *fakeAccountStore) GetAccountsByIDs(accountIDs []uuid.UUID) ([]*SocialAccount, error) {
	var result []*SocialAccount
	for _, id := range accountIDs {
		if account, ok := s.accounts[id]; ok {
			result = append(result, account)
		}
	}

	return result, nil
}

func (s *fakeAccountStore) GetActiveAccountsByUserID(userID uuid.UUID) ([]*SocialAccount, error) {
	var result []*SocialAccount
	for _, account := range s.accounts {
		if account.UserID == userID && account.IsActive {
			result = append(result, account)
		}
	}

	return result, nil
}

func (s *fakeAccountStore) UpdateAccount(account *SocialAccount) error {
	s.accounts[account.ID] = account
	return nil
}

type noopAuditLogWriter struct{}

func (noopAuditLogWriter) WriteAuditLog(message string, userID *uuid.UUID, workspaceID *uuid.UUID) {
}

func newServiceForTest() (*SocialAccountService, *fakeAccountStore) {
	store := newFakeAccountStore()
	return NewSocialAccountService(store, noopAuditLogWriter{}), store
}

func Test_RegisterAccount_StoresAccountForUser(t *testing.T) {
	service, _ := newServiceForTest()
	user := &users_models.User{ID: uuid.New(), Name: "alice"}

	account, err := service.RegisterAccount(&RegisterAccountRequestDTO{
		Platform:       SocialPlatformTwitter,
		Username:       "@alice",
		TokenExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}, user)

	require.NoError(t, err)
	assert.Equal(t, user.ID, account.UserID)
	assert.True(t, account.IsActive)

	listing, err := service.GetUserAccounts(user)
	require.NoError(t, err)
	assert.Len(t, listing.Accounts, 1)
}

func Test_RegisterAccount_UnknownPlatformIsRejected(t *testing.T) {
	service, _ := newServiceForTest()
	user := &users_models.User{ID: uuid.New()}

	_, err := service.RegisterAccount(&RegisterAccountRequestDTO{
		Platform: SocialPlatform("MYSPACE"),
		Username: "@alice",
	}, user)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func Test_DeleteAccount_OnlyOwnerMayDelete(t *testing.T) {
	service, _ := newServiceForTest()
	owner := &users_models.User{ID: uuid.New(), Name: "alice"}
	stranger := &users_models.User{ID: uuid.New(), Name: "eve"}

	account, err := service.RegisterAccount(&RegisterAccountRequestDTO{
		Platform:       SocialPlatformLinkedin,
		Username:       "alice",
		TokenExpiresAt: time.Now().UTC().Add(time.Hour),
	}, owner)
	require.NoError(t, err)

	err = service.DeleteAccount(account.ID, stranger)
	var authErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authErr)

	require.NoError(t, service.DeleteAccount(account.ID, owner))

	// deleted accounts vanish from the listing and cannot be deleted twice
	listing, err := service.GetUserAccounts(owner)
	require.NoError(t, err)
	assert.Empty(t, listing.Accounts)

	err = service.DeleteAccount(account.ID, owner)
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func Test_VerifyOwnership(t *testing.T) {
	service, store := newServiceForTest()
	owner := &users_models.User{ID: uuid.New(), Name: "alice"}
	stranger := &users_models.User{ID: uuid.New(), Name: "eve"}

	live := &SocialAccount{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Platform:       SocialPlatformInstagram,
		Username:       "alice",
		TokenExpiresAt: time.Now().UTC().Add(time.Hour),
		IsActive:       true,
	}
	require.NoError(t, store.CreateAccount(live))

	expired := &SocialAccount{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Platform:       SocialPlatformInstagram,
		Username:       "alice-old",
		TokenExpiresAt: time.Now().UTC().Add(-time.Hour),
		IsActive:       true,
	}
	require.NoError(t, store.CreateAccount(expired))

	account, err := service.VerifyOwnership(live.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, account.ID)

	_, err = service.VerifyOwnership(live.ID, stranger.ID)
	var authErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authErr)

	_, err = service.VerifyOwnership(expired.ID, owner.ID)
	var businessErr *apperrors.BusinessLogicError
	require.ErrorAs(t, err, &businessErr)

	_, err = service.VerifyOwnership(uuid.New(), owner.ID)
	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func Test_SocialAccount_IsExpired(t *testing.T) {
	now := time.Now().UTC()

	assert.False(t, (&SocialAccount{TokenExpiresAt: now.Add(time.Minute)}).IsExpired(now))
	assert.True(t, (&SocialAccount{TokenExpiresAt: now.Add(-time.Minute)}).IsExpired(now))
	assert.False(t, (&SocialAccount{}).IsExpired(now))
}
