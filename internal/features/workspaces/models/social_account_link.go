package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// SocialAccountLink associates a social account with a workspace so the
// posting proxy may publish through it. Same two-state lifecycle as
// memberships: unlink deactivates, a later link reactivates the row.
type SocialAccountLink struct {
	ID              uuid.UUID `json:"id"              gorm:"column:id"`
	WorkspaceID     uuid.UUID `json:"workspaceId"     gorm:"column:workspace_id"`
	SocialAccountID uuid.UUID `json:"socialAccountId" gorm:"column:social_account_id"`
	LinkedBy        uuid.UUID `json:"linkedBy"        gorm:"column:linked_by"`
	IsActive        bool      `json:"isActive"        gorm:"column:is_active"`
	LinkedAt        time.Time `json:"linkedAt"        gorm:"column:linked_at"`
}

func (SocialAccountLink) TableName() string {
	return "social_account_links"
}

func (l *SocialAccountLink) Deactivate() {
	l.IsActive = false
}

func (l *SocialAccountLink) Reactivate(linkedBy uuid.UUID) {
	l.LinkedBy = linkedBy
	l.IsActive = true
	l.LinkedAt = time.Now().UTC()
}
