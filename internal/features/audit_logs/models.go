package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of a membership or account event.
// WorkspaceID is nil for account-level events such as signup and
// signin; UserID is nil when the acting user is unknown. Rows are never
// updated or deleted, so soft-deleted workspaces keep their history.
type AuditLog struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	UserID      *uuid.UUID `json:"userId"      gorm:"column:user_id"`
	WorkspaceID *uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
	Message     string     `json:"message"     gorm:"column:message"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
