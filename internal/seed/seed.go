package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/auth"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// CreateSampleData populates an empty store with a default admin account and a
// few starter clubs, events and announcements. A store that already has users
// is left untouched.
func CreateSampleData(ctx context.Context, st store.Store, lgr zerolog.Logger) error {
	users := make(map[string]*models.User)
	if err := st.Get(ctx, store.BucketUsers, &users); err != nil {
		return err
	}
	if len(users) > 0 {
		lgr.Debug().Msg("Store already populated, skipping sample data")
		return nil
	}

	lgr.Info().Msg("Seeding sample campus data...")

	hashed, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	now := helpers.NowISO()
	admin := &models.User{
		ID:         uuid.New().String(),
		Email:      "admin@college.edu",
		Name:       "Platform Admin",
		Year:       "Graduate",
		Branch:     "Administration",
		Interests:  []string{"campus life"},
		Password:   hashed,
		Role:       models.RoleAdmin,
		IsVerified: true,
		JoinedDate: now,
		LastLogin:  now,
	}
	users[admin.ID] = admin
	if err := st.Put(ctx, store.BucketUsers, users); err != nil {
		return err
	}

	clubs := map[string]*models.Club{}
	for _, c := range []struct {
		name, description, schedule, location string
		tags                                  []string
	}{
		{"Coding Club", "Weekly problem solving sessions and hackathon prep.", "Wednesdays 6pm", "CS Building 101", []string{"technology", "programming"}},
		{"Photography Society", "Campus photo walks and editing workshops.", "Saturdays 10am", "Arts Center", []string{"arts", "photography"}},
		{"Debate Union", "Parliamentary debate practice, open to all years.", "Fridays 5pm", "Main Hall 2", []string{"debate", "public speaking"}},
	} {
		club := &models.Club{
			ID:              "club_" + uuid.New().String()[:8],
			Name:            c.name,
			Description:     c.description,
			Members:         []string{admin.ID},
			Admins:          []string{admin.ID},
			Tags:            c.tags,
			MeetingSchedule: c.schedule,
			Location:        c.location,
			MaxMembers:      50,
			CreatedAt:       now,
			CreatedBy:       admin.ID,
		}
		clubs[club.ID] = club
	}
	if err := st.Put(ctx, store.BucketClubs, clubs); err != nil {
		return err
	}

	events := map[string]*models.Event{}
	event := &models.Event{
		ID:           "event_" + uuid.New().String()[:8],
		Title:        "Welcome Week Mixer",
		Description:  "Meet clubs and fellow students over snacks.",
		Date:         time.Now().AddDate(0, 0, 7).UTC().Format(time.RFC3339),
		Location:     "Student Union Lawn",
		ClubID:       models.SystemOwner,
		CreatedBy:    admin.ID,
		RSVPs:        []string{admin.ID},
		MaxAttendees: 200,
		Tags:         []string{"social"},
		CreatedAt:    now,
	}
	events[event.ID] = event
	if err := st.Put(ctx, store.BucketEvents, events); err != nil {
		return err
	}

	announcements := []*models.Announcement{
		{
			ID:        "ann_" + uuid.New().String()[:8],
			Title:     "Welcome to CampusHub",
			Content:   "Browse clubs, find events and say hello in the chat.",
			Author:    admin.Name,
			AuthorID:  admin.ID,
			Type:      models.AnnouncementCollege,
			Priority:  models.PriorityMedium,
			Timestamp: now,
		},
	}
	if err := st.Put(ctx, store.BucketAnnouncements, announcements); err != nil {
		return err
	}

	lgr.Info().Int("clubs", len(clubs)).Msg("Sample data seeded")
	return nil
}
