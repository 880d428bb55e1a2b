package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// Confession content length bounds in characters, counted after trimming
const (
	confessionMinLength = 10
	confessionMaxLength = 1000
)

func validCategory(category string) bool {
	for _, c := range models.ConfessionCategories {
		if c == category {
			return true
		}
	}
	return false
}

// VoteDirection is a vote on a confession
type VoteDirection string

const (
	VoteUp   VoteDirection = "upvote"
	VoteDown VoteDirection = "downvote"
)

// ModerationService owns the confession lifecycle: anonymous submission, voting,
// reporting, and the admin approve/reject/remove workflow. Role checks happen at
// the HTTP boundary; this service records the acting admin id.
type ModerationService interface {
	Submit(ctx context.Context, content, category string) (*models.Confession, error)
	Feed(ctx context.Context, category string) ([]*models.Confession, error)
	Vote(ctx context.Context, confessionID string, direction VoteDirection) (*models.Confession, error)
	Report(ctx context.Context, confessionID, reporterID, reason string) (*models.Report, error)
	AddComment(ctx context.Context, confessionID, content string) (*models.Comment, error)
	Approve(ctx context.Context, confessionID, adminID string) (*models.Confession, error)
	Reject(ctx context.Context, confessionID, adminID string) (*models.Confession, error)
	PendingConfessions(ctx context.Context) ([]*models.Confession, error)
	PendingReports(ctx context.Context) ([]*models.Report, error)
	DismissReport(ctx context.Context, reportID, adminID string) (*models.Report, error)
	ResolveReport(ctx context.Context, reportID, adminID string) (*models.Report, error)
}

type moderationServiceImpl struct {
	store  store.Store
	audit  AuditService
	logger zerolog.Logger
}

// NewModerationService creates a new ModerationService
func NewModerationService(st store.Store, audit AuditService, logger zerolog.Logger) ModerationService {
	return &moderationServiceImpl{
		store:  st,
		audit:  audit,
		logger: logger,
	}
}

func (s *moderationServiceImpl) loadConfessions(ctx context.Context) (map[string]*models.Confession, error) {
	confessions := make(map[string]*models.Confession)
	if err := s.store.Get(ctx, store.BucketConfessions, &confessions); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return confessions, nil
}

func (s *moderationServiceImpl) saveConfessions(ctx context.Context, confessions map[string]*models.Confession) error {
	if err := s.store.Put(ctx, store.BucketConfessions, confessions); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

func (s *moderationServiceImpl) loadReports(ctx context.Context) ([]*models.Report, error) {
	var reports []*models.Report
	if err := s.store.Get(ctx, store.BucketReports, &reports); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return reports, nil
}

func (s *moderationServiceImpl) saveReports(ctx context.Context, reports []*models.Report) error {
	if err := s.store.Put(ctx, store.BucketReports, reports); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// Submit creates a confession in the pending state. Content is validated before
// any write; nothing about the submitter is stored.
func (s *moderationServiceImpl) Submit(ctx context.Context, content, category string) (*models.Confession, error) {
	trimmed := strings.TrimSpace(content)
	length := utf8.RuneCountInString(trimmed)
	if length < confessionMinLength {
		return nil, apperrors.ErrTooShort
	}
	if length > confessionMaxLength {
		return nil, apperrors.ErrTooLong
	}
	if category == "" {
		category = "General"
	} else if !validCategory(category) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidValue, "unknown confession category")
	}

	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession := &models.Confession{
		ID:        "confess_" + uuid.New().String()[:8],
		Content:   trimmed,
		Category:  category,
		Status:    models.ConfessionPending,
		Comments:  []models.Comment{},
		CreatedAt: helpers.NowISO(),
	}

	confessions[confession.ID] = confession
	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}

	s.logger.Info().Str("confessionID", confession.ID).Msg("Confession submitted for moderation")
	return confession, nil
}

// Feed returns approved confessions only, sorted by vote differential descending,
// optionally narrowed to one category. Pending and rejected confessions never
// appear regardless of votes.
func (s *moderationServiceImpl) Feed(ctx context.Context, category string) ([]*models.Confession, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	var feed []*models.Confession
	for _, confession := range confessions {
		if confession.Status != models.ConfessionApproved {
			continue
		}
		if category != "" && confession.Category != category {
			continue
		}
		feed = append(feed, confession)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Score() > feed[j].Score()
	})
	return feed, nil
}

// Vote increments the up or down counter. Repeat votes by the same user are not
// de-duplicated: the data model keeps no per-user vote ledger, so the counters
// are plain tallies.
func (s *moderationServiceImpl) Vote(ctx context.Context, confessionID string, direction VoteDirection) (*models.Confession, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession, ok := confessions[confessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("confession not found")
	}

	if direction == VoteUp {
		confession.Upvotes++
	} else {
		confession.Downvotes++
	}

	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}
	return confession, nil
}

// Report files a report against a confession and bumps its report counter
func (s *moderationServiceImpl) Report(ctx context.Context, confessionID, reporterID, reason string) (*models.Report, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession, ok := confessions[confessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("confession not found")
	}

	if reason == "" {
		reason = "Inappropriate content"
	}

	confession.Reports++
	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}

	reports, err := s.loadReports(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:           uuid.New().String(),
		ConfessionID: confessionID,
		ReporterID:   reporterID,
		Reason:       reason,
		Status:       models.ReportPending,
		CreatedAt:    helpers.NowISO(),
	}
	reports = append(reports, report)

	if err := s.saveReports(ctx, reports); err != nil {
		return nil, err
	}

	s.logger.Info().Str("confessionID", confessionID).Str("reportID", report.ID).Msg("Confession reported")
	return report, nil
}

// AddComment appends an anonymous comment. Sequence order is submission order.
func (s *moderationServiceImpl) AddComment(ctx context.Context, confessionID, content string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, apperrors.NewMissingFieldError("a comment")
	}

	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession, ok := confessions[confessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("confession not found")
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		Content:   trimmed,
		Timestamp: helpers.NowISO(),
	}
	confession.Comments = append(confession.Comments, comment)

	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Approve publishes a confession and records who approved it when. Re-approving
// an already approved confession is allowed and refreshes the approval record.
func (s *moderationServiceImpl) Approve(ctx context.Context, confessionID, adminID string) (*models.Confession, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession, ok := confessions[confessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("confession not found")
	}

	now := helpers.NowISO()
	confession.Status = models.ConfessionApproved
	confession.ApprovedAt = &now
	confession.ApprovedBy = &adminID

	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, adminID, "approved_confession", "confession", confessionID); err != nil {
		return nil, err
	}
	return confession, nil
}

// Reject marks a confession rejected so it never reaches the public feed
func (s *moderationServiceImpl) Reject(ctx context.Context, confessionID, adminID string) (*models.Confession, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	confession, ok := confessions[confessionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("confession not found")
	}

	confession.Status = models.ConfessionRejected
	if err := s.saveConfessions(ctx, confessions); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, adminID, "rejected_confession", "confession", confessionID); err != nil {
		return nil, err
	}
	return confession, nil
}

// PendingConfessions returns confessions awaiting review, oldest first
func (s *moderationServiceImpl) PendingConfessions(ctx context.Context) ([]*models.Confession, error) {
	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*models.Confession
	for _, confession := range confessions {
		if confession.Status == models.ConfessionPending {
			pending = append(pending, confession)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt < pending[j].CreatedAt
	})
	return pending, nil
}

// PendingReports returns reports awaiting review, oldest first
func (s *moderationServiceImpl) PendingReports(ctx context.Context) ([]*models.Report, error) {
	reports, err := s.loadReports(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*models.Report
	for _, report := range reports {
		if report.Status == models.ReportPending {
			pending = append(pending, report)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt < pending[j].CreatedAt
	})
	return pending, nil
}

func findReport(reports []*models.Report, reportID string) *models.Report {
	for _, report := range reports {
		if report.ID == reportID {
			return report
		}
	}
	return nil
}

// DismissReport closes a report without touching the confession
func (s *moderationServiceImpl) DismissReport(ctx context.Context, reportID, adminID string) (*models.Report, error) {
	reports, err := s.loadReports(ctx)
	if err != nil {
		return nil, err
	}

	report := findReport(reports, reportID)
	if report == nil {
		return nil, apperrors.NewNotFoundError("report not found")
	}

	report.Status = models.ReportDismissed
	if err := s.saveReports(ctx, reports); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, adminID, "dismissed_report", "report", reportID); err != nil {
		return nil, err
	}
	return report, nil
}

// ResolveReport deletes the reported confession and marks the report resolved.
// This is the one destructive cross-entity operation in the system and cannot be
// undone.
func (s *moderationServiceImpl) ResolveReport(ctx context.Context, reportID, adminID string) (*models.Report, error) {
	reports, err := s.loadReports(ctx)
	if err != nil {
		return nil, err
	}

	report := findReport(reports, reportID)
	if report == nil {
		return nil, apperrors.NewNotFoundError("report not found")
	}

	confessions, err := s.loadConfessions(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := confessions[report.ConfessionID]; ok {
		delete(confessions, report.ConfessionID)
		if err := s.saveConfessions(ctx, confessions); err != nil {
			return nil, err
		}
	}

	report.Status = models.ReportResolved
	if err := s.saveReports(ctx, reports); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, adminID, "removed_reported_content", "confession", report.ConfessionID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("reportID", reportID).
		Str("confessionID", report.ConfessionID).
		Msg("Reported confession removed")
	return report, nil
}
