package audit_logs

import (
	"poststack-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
}

// WriteAuditLog records an audit entry. Failures are logged and never
// propagated: audit writes must not abort the operation that triggered
// them.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
	}

	if err := s.auditLogRepository.Save(auditLog); err != nil {
		log.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if request.Limit <= 0 || request.Limit > 500 {
		request.Limit = 100
	}

	if request.Offset < 0 {
		request.Offset = 0
	}

	logs, total, err := s.auditLogRepository.GetByWorkspaceID(workspaceID, request)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}
