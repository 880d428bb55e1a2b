package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

func newModerationFixture() (ModerationService, AuditService) {
	st := store.NewMemoryStore()
	audit := NewAuditService(st, zerolog.Nop())
	return NewModerationService(st, audit, zerolog.Nop()), audit
}

func TestSubmitLengthBoundaries(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	cases := []struct {
		length int
		ok     bool
		want   error
	}{
		{9, false, apperrors.ErrTooShort},
		{10, true, nil},
		{1000, true, nil},
		{1001, false, apperrors.ErrTooLong},
	}
	for _, tc := range cases {
		_, err := svc.Submit(ctx, strings.Repeat("a", tc.length), "")
		if tc.ok && err != nil {
			t.Fatalf("length %d should be accepted: %v", tc.length, err)
		}
		if !tc.ok && !errors.Is(err, tc.want) {
			t.Fatalf("length %d: expected %v, got %v", tc.length, tc.want, err)
		}
	}
}

func TestSubmitCountsCharactersNotBytes(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	// 5 characters but 10 bytes in UTF-8; still under the minimum
	if _, err := svc.Submit(ctx, "ğğğğğ", ""); !errors.Is(err, apperrors.ErrTooShort) {
		t.Fatalf("5-character multibyte content should be too short, got %v", err)
	}

	// 1000 characters but 2000 bytes; exactly at the maximum
	if _, err := svc.Submit(ctx, strings.Repeat("ğ", 1000), ""); err != nil {
		t.Fatalf("1000-character multibyte content should be accepted: %v", err)
	}

	if _, err := svc.Submit(ctx, strings.Repeat("ğ", 1001), ""); !errors.Is(err, apperrors.ErrTooLong) {
		t.Fatalf("1001-character multibyte content should be too long, got %v", err)
	}
}

func TestSubmitCategoryValidation(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	c, err := svc.Submit(ctx, "a confession without a category", "")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if c.Category != "General" {
		t.Fatalf("blank category should default to General, got %q", c.Category)
	}

	c, err = svc.Submit(ctx, "a confession about my grades", "Academic")
	if err != nil {
		t.Fatalf("submit with known category failed: %v", err)
	}
	if c.Category != "Academic" {
		t.Fatalf("category not kept: %q", c.Category)
	}

	if _, err := svc.Submit(ctx, "a confession in no known category", "Gossip"); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Fatalf("unknown category should be rejected, got %v", err)
	}
}

func TestSubmitTrimsBeforeCounting(t *testing.T) {
	svc, _ := newModerationFixture()

	// 9 real characters padded with whitespace must still be rejected
	_, err := svc.Submit(context.Background(), "   "+strings.Repeat("a", 9)+"   ", "")
	if !errors.Is(err, apperrors.ErrTooShort) {
		t.Fatalf("expected ErrTooShort after trimming, got %v", err)
	}
}

func TestFeedApprovedOnlySortedByScore(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	low, _ := svc.Submit(ctx, "approved with a low score", "")
	high, _ := svc.Submit(ctx, "approved with a high score", "")
	pending, _ := svc.Submit(ctx, "still waiting for review", "")

	svc.Approve(ctx, low.ID, "admin")
	svc.Approve(ctx, high.ID, "admin")

	// Pending items stay invisible no matter how popular
	for i := 0; i < 5; i++ {
		svc.Vote(ctx, pending.ID, VoteUp)
	}
	svc.Vote(ctx, high.ID, VoteUp)
	svc.Vote(ctx, high.ID, VoteUp)
	svc.Vote(ctx, low.ID, VoteDown)

	feed, err := svc.Feed(ctx, "")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 approved confessions, got %d", len(feed))
	}
	if feed[0].ID != high.ID || feed[1].ID != low.ID {
		t.Fatal("feed should be sorted by vote differential descending")
	}
}

func TestRejectedNeverInFeed(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	c, _ := svc.Submit(ctx, "this one gets rejected", "")
	svc.Reject(ctx, c.ID, "admin")

	feed, _ := svc.Feed(ctx, "")
	if len(feed) != 0 {
		t.Fatalf("rejected confession leaked into feed: %v", feed)
	}
}

func TestApproveRecordsAdminAndAudit(t *testing.T) {
	svc, audit := newModerationFixture()
	ctx := context.Background()

	c, _ := svc.Submit(ctx, "a perfectly fine confession", "")
	approved, err := svc.Approve(ctx, c.ID, "admin-7")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != models.ConfessionApproved {
		t.Fatalf("unexpected status %q", approved.Status)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != "admin-7" {
		t.Fatal("approver not recorded")
	}
	if approved.ApprovedAt == nil {
		t.Fatal("approval time not recorded")
	}

	entries, err := audit.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("audit read failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Action != "approved_confession" || entry.TargetType != "confession" || entry.TargetID != c.ID || entry.AdminID != "admin-7" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
}

func TestResolveReportDeletesConfession(t *testing.T) {
	svc, audit := newModerationFixture()
	ctx := context.Background()

	c, _ := svc.Submit(ctx, "content that gets reported", "")
	svc.Approve(ctx, c.ID, "admin")
	report, err := svc.Report(ctx, c.ID, "reporter", "spam")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	resolved, err := svc.ResolveReport(ctx, report.ID, "admin")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Status != models.ReportResolved {
		t.Fatalf("unexpected report status %q", resolved.Status)
	}

	// The confession is gone for good
	if _, err := svc.Vote(ctx, c.ID, VoteUp); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected confession to be deleted, got %v", err)
	}
	feed, _ := svc.Feed(ctx, "")
	if len(feed) != 0 {
		t.Fatal("deleted confession still in feed")
	}

	entries, _ := audit.Recent(ctx, 10)
	var found bool
	for _, e := range entries {
		if e.Action == "removed_reported_content" && e.TargetID == c.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("removal was not audited")
	}
}

func TestDismissReportKeepsConfession(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	c, _ := svc.Submit(ctx, "harmless content someone disliked", "")
	svc.Approve(ctx, c.ID, "admin")
	report, _ := svc.Report(ctx, c.ID, "reporter", "")

	dismissed, err := svc.DismissReport(ctx, report.ID, "admin")
	if err != nil {
		t.Fatalf("dismiss failed: %v", err)
	}
	if dismissed.Status != models.ReportDismissed {
		t.Fatalf("unexpected status %q", dismissed.Status)
	}

	feed, _ := svc.Feed(ctx, "")
	if len(feed) != 1 {
		t.Fatal("confession should survive a dismissed report")
	}

	pending, _ := svc.PendingReports(ctx)
	if len(pending) != 0 {
		t.Fatal("dismissed report still pending")
	}
}

func TestPendingQueueContents(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	first, _ := svc.Submit(ctx, "the first confession in line", "")
	second, _ := svc.Submit(ctx, "the second confession in line", "")
	approved, _ := svc.Submit(ctx, "this one is already handled", "")
	svc.Approve(ctx, approved.ID, "admin")

	pending, err := svc.PendingConfessions(ctx)
	if err != nil {
		t.Fatalf("pending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	ids := map[string]bool{pending[0].ID: true, pending[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Fatalf("pending queue has wrong members: %v", ids)
	}
}

func TestAddCommentAnonymous(t *testing.T) {
	svc, _ := newModerationFixture()
	ctx := context.Background()

	c, _ := svc.Submit(ctx, "a confession worth discussing", "")
	comment, err := svc.AddComment(ctx, c.ID, "  totally relatable  ")
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if comment.Content != "totally relatable" {
		t.Fatalf("comment not trimmed: %q", comment.Content)
	}
}
