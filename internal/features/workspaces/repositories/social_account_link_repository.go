package workspaces_repositories

import (
	"time"

	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialAccountLinkRepository struct{}

func (r *SocialAccountLinkRepository) CreateLink(
	link *workspaces_models.SocialAccountLink,
) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	if link.LinkedAt.IsZero() {
		link.LinkedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(link).Error
}

func (r *SocialAccountLinkRepository) GetLinkAnyState(
	workspaceID, socialAccountID uuid.UUID,
) (*workspaces_models.SocialAccountLink, error) {
	var link workspaces_models.SocialAccountLink

	err := storage.GetDb().
		Where("workspace_id = ? AND social_account_id = ?", workspaceID, socialAccountID).
		First(&link).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &link, nil
}

func (r *SocialAccountLinkRepository) GetActiveLinksByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.SocialAccountLink, error) {
	links := make([]*workspaces_models.SocialAccountLink, 0)

	err := storage.GetDb().
		Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Order("linked_at ASC").
		Find(&links).Error

	return links, err
}

func (r *SocialAccountLinkRepository) UpdateLink(
	link *workspaces_models.SocialAccountLink,
) error {
	return storage.GetDb().Save(link).Error
}
