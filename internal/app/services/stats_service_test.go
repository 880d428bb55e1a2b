package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
)

func TestPlatformStats(t *testing.T) {
	st := store.NewMemoryStore()
	lgr := zerolog.Nop()
	ctx := context.Background()

	audit := NewAuditService(st, lgr)
	authSvc := NewAuthService(st, audit, lgr)
	clubSvc := NewClubService(st, lgr)
	moderationSvc := NewModerationService(st, audit, lgr)
	statsSvc := NewStatsService(st, lgr)

	if _, err := authSvc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	clubSvc.CreateClub(ctx, &dto.CreateClubRequest{Name: "Chess", Description: "d"}, "u")

	pending, _ := moderationSvc.Submit(ctx, "a confession still in review", "")
	approved, _ := moderationSvc.Submit(ctx, "a confession already public", "")
	moderationSvc.Approve(ctx, approved.ID, "admin")
	moderationSvc.Report(ctx, approved.ID, "reporter", "")

	stats, err := statsSvc.PlatformStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalClubs != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.PendingConfessions != 1 {
		t.Fatalf("expected 1 pending confession (%s), got %d", pending.ID, stats.PendingConfessions)
	}
	if stats.PendingReports != 1 {
		t.Fatalf("expected 1 pending report, got %d", stats.PendingReports)
	}
	if stats.NewUsersLastWeek != 1 {
		t.Fatalf("registration just happened, expected 1 new user, got %d", stats.NewUsersLastWeek)
	}
}
