package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

func newEventService() EventService {
	return NewEventService(store.NewMemoryStore(), zerolog.Nop())
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).UTC().Format(time.RFC3339)
}

func TestCreateEventCreatorAutoRSVP(t *testing.T) {
	svc := newEventService()

	event, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Hack Night",
		Description: "Bring a laptop",
		Date:        futureDate(3),
	}, "creator")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !event.HasRSVP("creator") {
		t.Fatal("creator should be RSVP'd automatically")
	}
	if event.ClubID != "system" {
		t.Fatalf("expected system owner for clubless event, got %q", event.ClubID)
	}
}

func TestRSVPIdempotentAndCapacity(t *testing.T) {
	svc := newEventService()
	ctx := context.Background()

	event, _ := svc.CreateEvent(ctx, &dto.CreateEventRequest{
		Title:        "Tiny Workshop",
		Description:  "d",
		Date:         futureDate(1),
		MaxAttendees: 3,
	}, "creator")

	for i := 0; i < 2; i++ {
		if _, err := svc.RSVP(ctx, event.ID, fmt.Sprintf("user-%d", i)); err != nil {
			t.Fatalf("rsvp %d failed: %v", i, err)
		}
	}

	if _, err := svc.RSVP(ctx, event.ID, "late"); !errors.Is(err, apperrors.ErrEventFull) {
		t.Fatalf("expected ErrEventFull, got %v", err)
	}

	// Repeat RSVP at capacity is a no-op success
	updated, err := svc.RSVP(ctx, event.ID, "user-0")
	if err != nil {
		t.Fatalf("repeat rsvp failed: %v", err)
	}
	if len(updated.RSVPs) != 3 {
		t.Fatalf("expected 3 RSVPs, got %d", len(updated.RSVPs))
	}
}

func TestCancelRSVPAbsentIsNoOp(t *testing.T) {
	svc := newEventService()
	ctx := context.Background()

	event, _ := svc.CreateEvent(ctx, &dto.CreateEventRequest{
		Title: "Talk", Description: "d", Date: futureDate(1),
	}, "creator")

	updated, err := svc.CancelRSVP(ctx, event.ID, "never-joined")
	if err != nil {
		t.Fatalf("cancel for absent user should be a no-op: %v", err)
	}
	if len(updated.RSVPs) != 1 {
		t.Fatalf("RSVP set changed unexpectedly: %v", updated.RSVPs)
	}
}

func TestUpcomingAndPastWindows(t *testing.T) {
	svc := newEventService()
	ctx := context.Background()

	svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Future", Description: "d", Date: futureDate(5)}, "u")
	svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Long Past", Description: "d", Date: futureDate(-10)}, "u")
	svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Recent Past", Description: "d", Date: futureDate(-1)}, "u")
	svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Broken", Description: "d", Date: "not a date"}, "u")

	upcoming, err := svc.UpcomingEvents(ctx)
	if err != nil {
		t.Fatalf("upcoming failed: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Title != "Future" {
		t.Fatalf("unexpected upcoming set: %v", upcoming)
	}

	past, err := svc.PastEvents(ctx)
	if err != nil {
		t.Fatalf("past failed: %v", err)
	}
	if len(past) != 2 {
		t.Fatalf("expected 2 past events, got %d", len(past))
	}
	if past[0].Title != "Recent Past" {
		t.Fatalf("past events should be most recent first, got %q", past[0].Title)
	}
}

func TestEventsForUser(t *testing.T) {
	svc := newEventService()
	ctx := context.Background()

	a, _ := svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "A", Description: "d", Date: futureDate(2)}, "creator")
	svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "B", Description: "d", Date: futureDate(3)}, "other")
	svc.RSVP(ctx, a.ID, "alice")

	mine, err := svc.EventsForUser(ctx, "alice")
	if err != nil {
		t.Fatalf("events for user failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Fatalf("unexpected result: %v", mine)
	}
}
