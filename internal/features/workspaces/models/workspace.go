package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceSettings is an opaque settings bag; the core stores and
// returns it without interpreting the keys.
type WorkspaceSettings map[string]any

type Workspace struct {
	ID        uuid.UUID         `json:"id"        gorm:"column:id"`
	Name      string            `json:"name"      gorm:"column:name"`
	CreatedBy uuid.UUID         `json:"createdBy" gorm:"column:created_by"`
	IsDefault bool              `json:"isDefault" gorm:"column:is_default"`
	IsActive  bool              `json:"isActive"  gorm:"column:is_active"`
	Settings  WorkspaceSettings `json:"settings"  gorm:"column:settings;serializer:json"`
	CreatedAt time.Time         `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time         `json:"updatedAt" gorm:"column:updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

// Deactivate soft-deletes the workspace. Memberships and links keep
// their rows for audit but become unreachable through access checks.
func (w *Workspace) Deactivate() {
	w.IsActive = false
	w.UpdatedAt = time.Now().UTC()
}
