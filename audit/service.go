// api/audit/service.go
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	logger "github.com/EivorRrz/restro/api/logging"
)

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error)
	// Record writes an audit log, logging instead of returning a failure.
	Record(ctx context.Context, log AuditLog)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = s.now().UTC()
	}
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, resourceID)
}

func (s *service) Record(ctx context.Context, log AuditLog) {
	if err := s.LogAccess(ctx, log); err != nil {
		logger.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("action", log.Action),
			zap.String("resourceID", log.ResourceID))
	}
}
