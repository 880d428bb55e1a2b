package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest, author *models.User) (*models.Announcement, error)
	List(ctx context.Context, announcementType string) ([]*models.Announcement, error)
}

type announcementServiceImpl struct {
	store  store.Store
	audit  AuditService
	logger zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(st store.Store, audit AuditService, logger zerolog.Logger) AnnouncementService {
	return &announcementServiceImpl{
		store:  st,
		audit:  audit,
		logger: logger,
	}
}

func (s *announcementServiceImpl) loadAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	if err := s.store.Get(ctx, store.BucketAnnouncements, &announcements); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return announcements, nil
}

// Create publishes an announcement. College-wide announcements are an admin
// action and get an audit entry; club and event announcements do not.
func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.CreateAnnouncementRequest, author *models.User) (*models.Announcement, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewMissingFieldError("an announcement title")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewMissingFieldError("announcement content")
	}

	announcementType := models.AnnouncementType(req.Type)
	if announcementType == "" {
		announcementType = models.AnnouncementCollege
	}
	priority := models.AnnouncementPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	announcements, err := s.loadAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		ID:        "ann_" + uuid.New().String()[:8],
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		Author:    author.Name,
		AuthorID:  author.ID,
		Type:      announcementType,
		Priority:  priority,
		Timestamp: helpers.NowISO(),
	}
	announcements = append(announcements, announcement)

	if err := s.store.Put(ctx, store.BucketAnnouncements, announcements); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	if announcementType == models.AnnouncementCollege {
		if err := s.audit.Append(ctx, author.ID, "created_announcement", "announcement", announcement.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("announcementID", announcement.ID).Str("type", string(announcementType)).Msg("Announcement published")
	return announcement, nil
}

// List returns announcements newest first, optionally filtered by type
func (s *announcementServiceImpl) List(ctx context.Context, announcementType string) ([]*models.Announcement, error) {
	announcements, err := s.loadAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.Announcement
	for _, announcement := range announcements {
		if announcementType != "" && string(announcement.Type) != announcementType {
			continue
		}
		result = append(result, announcement)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	return result, nil
}
