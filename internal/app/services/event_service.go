package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

const eventDefaultCapacity = 50

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, creatorID string) (*models.Event, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	UpcomingEvents(ctx context.Context) ([]*models.Event, error)
	PastEvents(ctx context.Context) ([]*models.Event, error)
	EventsForUser(ctx context.Context, userID string) ([]*models.Event, error)
	RSVP(ctx context.Context, eventID, userID string) (*models.Event, error)
	CancelRSVP(ctx context.Context, eventID, userID string) (*models.Event, error)
}

type eventServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(st store.Store, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		store:  st,
		logger: logger,
	}
}

func (s *eventServiceImpl) loadEvents(ctx context.Context) (map[string]*models.Event, error) {
	events := make(map[string]*models.Event)
	if err := s.store.Get(ctx, store.BucketEvents, &events); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return events, nil
}

func (s *eventServiceImpl) saveEvents(ctx context.Context, events map[string]*models.Event) error {
	if err := s.store.Put(ctx, store.BucketEvents, events); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// CreateEvent creates a new event. The creator is RSVP'd automatically.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, creatorID string) (*models.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewMissingFieldError("an event title")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewMissingFieldError("an event description")
	}

	maxAttendees := req.MaxAttendees
	if maxAttendees <= 0 {
		maxAttendees = eventDefaultCapacity
	}

	clubID := req.ClubID
	if clubID == "" {
		clubID = models.SystemOwner
	}

	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:           "event_" + uuid.New().String()[:8],
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Date:         req.Date,
		Location:     req.Location,
		ClubID:       clubID,
		CreatedBy:    creatorID,
		RSVPs:        []string{creatorID},
		MaxAttendees: maxAttendees,
		Tags:         req.Tags,
		CreatedAt:    helpers.NowISO(),
	}

	events[event.ID] = event
	if err := s.saveEvents(ctx, events); err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventID", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

// GetEvent retrieves an event by id
func (s *eventServiceImpl) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}
	event, ok := events[eventID]
	if !ok {
		return nil, apperrors.NewNotFoundError("event not found")
	}
	return event, nil
}

// UpcomingEvents returns events dated now or later, soonest first. Events with
// malformed dates are excluded rather than failing the whole read.
func (s *eventServiceImpl) UpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventsInWindow(ctx, true)
}

// PastEvents returns events dated before now, most recent first
func (s *eventServiceImpl) PastEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventsInWindow(ctx, false)
}

func (s *eventServiceImpl) eventsInWindow(ctx context.Context, upcoming bool) ([]*models.Event, error) {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result []*models.Event
	for _, event := range events {
		when, ok := helpers.ParseISO(event.Date)
		if !ok {
			continue
		}
		if upcoming == !when.Before(now) {
			result = append(result, event)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if upcoming {
			return result[i].Date < result[j].Date
		}
		return result[i].Date > result[j].Date
	})
	return result, nil
}

// EventsForUser returns events the user has RSVP'd to, soonest first
func (s *eventServiceImpl) EventsForUser(ctx context.Context, userID string) ([]*models.Event, error) {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.Event
	for _, event := range events {
		if event.HasRSVP(userID) {
			result = append(result, event)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// RSVP adds a user to the RSVP set. A repeat RSVP is an idempotent no-op, not an
// error. Capacity is enforced at RSVP time.
func (s *eventServiceImpl) RSVP(ctx context.Context, eventID, userID string) (*models.Event, error) {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	event, ok := events[eventID]
	if !ok {
		return nil, apperrors.NewNotFoundError("event not found")
	}

	if event.HasRSVP(userID) {
		return event, nil
	}
	if len(event.RSVPs) >= event.MaxAttendees {
		return nil, apperrors.ErrEventFull
	}

	event.RSVPs = append(event.RSVPs, userID)
	if err := s.saveEvents(ctx, events); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("eventID", eventID).Str("userID", userID).Msg("RSVP added")
	return event, nil
}

// CancelRSVP removes a user from the RSVP set; a no-op when absent
func (s *eventServiceImpl) CancelRSVP(ctx context.Context, eventID, userID string) (*models.Event, error) {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return nil, err
	}

	event, ok := events[eventID]
	if !ok {
		return nil, apperrors.NewNotFoundError("event not found")
	}

	if !event.HasRSVP(userID) {
		return event, nil
	}

	event.RSVPs = removeID(event.RSVPs, userID)
	if err := s.saveEvents(ctx, events); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("eventID", eventID).Str("userID", userID).Msg("RSVP cancelled")
	return event, nil
}
