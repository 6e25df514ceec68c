package social_accounts

import (
	"time"

	"poststack-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialAccountRepository struct{}

func (r *SocialAccountRepository) CreateAccount(account *SocialAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(account).Error
}

func (r *SocialAccountRepository) GetAccountByID(accountID uuid.UUID) (*SocialAccount, error) {
	var account SocialAccount

	if err := storage.GetDb().Where("id = ?", accountID).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

func (r *SocialAccountRepository) GetAccountsByIDs(
	accountIDs []uuid.UUID,
) ([]*SocialAccount, error) {
	accounts := make([]*SocialAccount, 0)

	if len(accountIDs) == 0 {
		return accounts, nil
	}

	err := storage.GetDb().Where("id IN ?", accountIDs).Find(&accounts).Error

	return accounts, err
}

func (r *SocialAccountRepository) GetActiveAccountsByUserID(
	userID uuid.UUID,
) ([]*SocialAccount, error) {
	accounts := make([]*SocialAccount, 0)

	err := storage.GetDb().
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&accounts).Error

	return accounts, err
}

func (r *SocialAccountRepository) UpdateAccount(account *SocialAccount) error {
	return storage.GetDb().Save(account).Error
}
