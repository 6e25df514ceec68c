package workspaces_repositories

import (
	"time"

	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

// CreateWorkspaceWithOwner persists the workspace and its founding owner
// membership in one transaction, so a crash can never leave an
// ownerless workspace behind.
func (r *WorkspaceRepository) CreateWorkspaceWithOwner(
	workspace *workspaces_models.Workspace,
	membership *workspaces_models.WorkspaceMembership,
) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
		workspace.UpdatedAt = workspace.CreatedAt
	}

	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	membership.WorkspaceID = workspace.ID

	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}

		return tx.Create(membership).Error
	})
}

func (r *WorkspaceRepository) GetActiveWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Where("id = ? AND is_active = ?", workspaceID, true).
		First(&workspace).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetActiveWorkspaceOwnedByUserWithName(
	userID uuid.UUID,
	name string,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Where("created_by = ? AND is_active = ? AND LOWER(name) = LOWER(?)", userID, true, name).
		First(&workspace).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) CountActiveWorkspacesOwnedBy(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.Workspace{}).
		Where("created_by = ? AND is_active = ?", userID, true).
		Count(&count).Error

	return count, err
}

func (r *WorkspaceRepository) GetActiveWorkspacesForUser(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	workspaces := make([]*workspaces_models.Workspace, 0)

	err := storage.GetDb().
		Table("workspaces w").
		Select("w.*").
		Joins("JOIN workspace_memberships wm ON w.id = wm.workspace_id").
		Where("wm.user_id = ? AND wm.is_active = ? AND w.is_active = ?", userID, true, true).
		Order("w.name ASC").
		Scan(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) UpdateWorkspace(workspace *workspaces_models.Workspace) error {
	workspace.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(workspace).Error
}
