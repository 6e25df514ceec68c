package workspaces_repositories

import (
	"time"

	users_enums "poststack-backend/internal/features/users/enums"
	workspaces_models "poststack-backend/internal/features/workspaces/models"
	"poststack-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(
	membership *workspaces_models.WorkspaceMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetActiveMembership(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	var membership workspaces_models.WorkspaceMembership

	err := storage.GetDb().
		Where("user_id = ? AND workspace_id = ? AND is_active = ?", userID, workspaceID, true).
		First(&membership).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// GetMembershipAnyState also surfaces soft-deleted rows so an invite can
// reactivate them instead of inserting a duplicate.
func (r *MembershipRepository) GetMembershipAnyState(
	userID, workspaceID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	var membership workspaces_models.WorkspaceMembership

	err := storage.GetDb().
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		First(&membership).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetActiveMembershipsByWorkspace(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceMembership, error) {
	memberships := make([]*workspaces_models.WorkspaceMembership, 0)

	err := storage.GetDb().
		Where("workspace_id = ? AND is_active = ?", workspaceID, true).
		Find(&memberships).Error

	return memberships, err
}

func (r *MembershipRepository) CountActiveMembershipsByRole(
	workspaceID uuid.UUID,
	role users_enums.WorkspaceRole,
) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&workspaces_models.WorkspaceMembership{}).
		Where("workspace_id = ? AND role = ? AND is_active = ?", workspaceID, role, true).
		Count(&count).Error

	return count, err
}

func (r *MembershipRepository) UpdateMembership(
	membership *workspaces_models.WorkspaceMembership,
) error {
	return storage.GetDb().Save(membership).Error
}
