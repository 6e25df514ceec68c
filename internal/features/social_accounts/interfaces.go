package social_accounts

import "github.com/google/uuid"

// SocialAccountStore is the persistence surface the account service
// needs; the gorm repository satisfies it, tests use an in-memory store.
type SocialAccountStore interface {
	CreateAccount(account *SocialAccount) error
	GetAccountByID(accountID uuid.UUID) (*SocialAccount, error)
	GetAccountsByIDs(accountIDs []uuid.UUID) ([]*SocialAccount, error)
	GetActiveAccountsByUserID(userID uuid.UUID) ([]*SocialAccount, error)
	UpdateAccount(account *SocialAccount) error
}
