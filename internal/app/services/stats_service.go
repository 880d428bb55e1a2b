package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// PlatformStats is the admin dashboard summary
type PlatformStats struct {
	TotalUsers         int `json:"totalUsers"`
	TotalClubs         int `json:"totalClubs"`
	TotalEvents        int `json:"totalEvents"`
	TotalListings      int `json:"totalListings"`
	PendingConfessions int `json:"pendingConfessions"`
	PendingReports     int `json:"pendingReports"`
	NewUsersLastWeek   int `json:"newUsersLastWeek"`
}

// StatsService computes platform-wide counts for the admin console
type StatsService interface {
	PlatformStats(ctx context.Context) (*PlatformStats, error)
}

type statsServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(st store.Store, logger zerolog.Logger) StatsService {
	return &statsServiceImpl{
		store:  st,
		logger: logger,
	}
}

// PlatformStats aggregates counts across every bucket in one pass each
func (s *statsServiceImpl) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}

	users := make(map[string]*models.User)
	if err := s.store.Get(ctx, store.BucketUsers, &users); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	stats.TotalUsers = len(users)

	weekAgo := time.Now().AddDate(0, 0, -7)
	for _, user := range users {
		joined, ok := helpers.ParseISO(user.JoinedDate)
		if ok && joined.After(weekAgo) {
			stats.NewUsersLastWeek++
		}
	}

	clubs := make(map[string]*models.Club)
	if err := s.store.Get(ctx, store.BucketClubs, &clubs); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	stats.TotalClubs = len(clubs)

	events := make(map[string]*models.Event)
	if err := s.store.Get(ctx, store.BucketEvents, &events); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	stats.TotalEvents = len(events)

	listings := make(map[string]*models.Listing)
	if err := s.store.Get(ctx, store.BucketMarketplace, &listings); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	stats.TotalListings = len(listings)

	confessions := make(map[string]*models.Confession)
	if err := s.store.Get(ctx, store.BucketConfessions, &confessions); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	for _, confession := range confessions {
		if confession.Status == models.ConfessionPending {
			stats.PendingConfessions++
		}
	}

	var reports []*models.Report
	if err := s.store.Get(ctx, store.BucketReports, &reports); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	for _, report := range reports {
		if report.Status == models.ReportPending {
			stats.PendingReports++
		}
	}

	return stats, nil
}
