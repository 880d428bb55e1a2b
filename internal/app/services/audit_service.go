package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// AuditService records privileged actions in an append-only log
type AuditService interface {
	Append(ctx context.Context, adminID, action, targetType, targetID string) error
	Recent(ctx context.Context, n int) ([]models.AdminLogEntry, error)
}

type auditServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(st store.Store, logger zerolog.Logger) AuditService {
	return &auditServiceImpl{
		store:  st,
		logger: logger,
	}
}

func (s *auditServiceImpl) loadLogs(ctx context.Context) ([]models.AdminLogEntry, error) {
	var logs []models.AdminLogEntry
	if err := s.store.Get(ctx, store.BucketAdminLogs, &logs); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return logs, nil
}

// Append adds a log entry. Entries are never mutated or deleted afterwards.
func (s *auditServiceImpl) Append(ctx context.Context, adminID, action, targetType, targetID string) error {
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return err
	}

	entry := models.AdminLogEntry{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Timestamp:  helpers.NowISO(),
	}
	logs = append(logs, entry)

	if err := s.store.Put(ctx, store.BucketAdminLogs, logs); err != nil {
		return apperrors.NewPersistenceError(err)
	}

	s.logger.Info().
		Str("adminID", adminID).
		Str("action", action).
		Str("targetType", targetType).
		Str("targetID", targetID).
		Msg("Admin action logged")
	return nil
}

// Recent returns the n most recent entries, newest first
func (s *auditServiceImpl) Recent(ctx context.Context, n int) ([]models.AdminLogEntry, error) {
	logs, err := s.loadLogs(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp > logs[j].Timestamp
	})

	if n > 0 && len(logs) > n {
		logs = logs[:n]
	}
	return logs, nil
}
