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

// Default and allowed capacity bounds for new clubs
const (
	clubMinCapacity     = 5
	clubMaxCapacity     = 500
	clubDefaultCapacity = 50
)

// ClubService defines the interface for club operations
type ClubService interface {
	CreateClub(ctx context.Context, req *dto.CreateClubRequest, creatorID string) (*models.Club, error)
	GetClub(ctx context.Context, clubID string) (*models.Club, error)
	ListClubs(ctx context.Context, search, tag string) ([]*models.Club, error)
	AllTags(ctx context.Context) ([]string, error)
	JoinClub(ctx context.Context, clubID, userID string) (*models.Club, error)
	LeaveClub(ctx context.Context, clubID, userID string) (*models.Club, error)
}

type clubServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(st store.Store, logger zerolog.Logger) ClubService {
	return &clubServiceImpl{
		store:  st,
		logger: logger,
	}
}

func (s *clubServiceImpl) loadClubs(ctx context.Context) (map[string]*models.Club, error) {
	clubs := make(map[string]*models.Club)
	if err := s.store.Get(ctx, store.BucketClubs, &clubs); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return clubs, nil
}

func (s *clubServiceImpl) saveClubs(ctx context.Context, clubs map[string]*models.Club) error {
	if err := s.store.Put(ctx, store.BucketClubs, clubs); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// CreateClub creates a new club. The creator starts in both the member and admin
// sets.
func (s *clubServiceImpl) CreateClub(ctx context.Context, req *dto.CreateClubRequest, creatorID string) (*models.Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewMissingFieldError("a club name")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewMissingFieldError("a club description")
	}

	maxMembers := req.MaxMembers
	if maxMembers == 0 {
		maxMembers = clubDefaultCapacity
	}
	if maxMembers < clubMinCapacity {
		maxMembers = clubMinCapacity
	}
	if maxMembers > clubMaxCapacity {
		maxMembers = clubMaxCapacity
	}

	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}

	club := &models.Club{
		ID:              "club_" + uuid.New().String()[:8],
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Members:         []string{creatorID},
		Admins:          []string{creatorID},
		Tags:            req.Tags,
		MeetingSchedule: req.MeetingSchedule,
		Location:        req.Location,
		MaxMembers:      maxMembers,
		CreatedAt:       helpers.NowISO(),
		CreatedBy:       creatorID,
	}

	clubs[club.ID] = club
	if err := s.saveClubs(ctx, clubs); err != nil {
		return nil, err
	}

	s.logger.Info().Str("clubID", club.ID).Str("name", club.Name).Msg("Club created")
	return club, nil
}

// GetClub retrieves a club by id
func (s *clubServiceImpl) GetClub(ctx context.Context, clubID string) (*models.Club, error) {
	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}
	club, ok := clubs[clubID]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}
	return club, nil
}

// ListClubs returns clubs matching the search query (name, description or tags,
// case insensitive) and the tag filter, newest first.
func (s *clubServiceImpl) ListClubs(ctx context.Context, search, tag string) ([]*models.Club, error) {
	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(search)
	result := make([]*models.Club, 0, len(clubs))
	for _, club := range clubs {
		if lower != "" && !clubMatches(club, lower) {
			continue
		}
		if tag != "" && !hasTag(club.Tags, tag) {
			continue
		}
		result = append(result, club)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

func clubMatches(club *models.Club, query string) bool {
	if strings.Contains(strings.ToLower(club.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(club.Description), query) {
		return true
	}
	for _, tag := range club.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

// AllTags returns the sorted set of tags in use across all clubs
func (s *clubServiceImpl) AllTags(ctx context.Context) ([]string, error) {
	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, club := range clubs {
		for _, tag := range club.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// JoinClub adds a user to the member set. Joining a club the user already belongs
// to is an idempotent no-op, not an error. Capacity is enforced at join time.
func (s *clubServiceImpl) JoinClub(ctx context.Context, clubID, userID string) (*models.Club, error) {
	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}

	club, ok := clubs[clubID]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	if club.HasMember(userID) {
		return club, nil
	}
	if len(club.Members) >= club.MaxMembers {
		return nil, apperrors.ErrClubFull
	}

	club.Members = append(club.Members, userID)
	if err := s.saveClubs(ctx, clubs); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("clubID", clubID).Str("userID", userID).Msg("User joined club")
	return club, nil
}

// LeaveClub removes a user from the member set, and from the admin set in the
// same state change. Leaving a club the user is not in is a no-op.
func (s *clubServiceImpl) LeaveClub(ctx context.Context, clubID, userID string) (*models.Club, error) {
	clubs, err := s.loadClubs(ctx)
	if err != nil {
		return nil, err
	}

	club, ok := clubs[clubID]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	if !club.HasMember(userID) {
		return club, nil
	}

	club.Members = removeID(club.Members, userID)
	club.Admins = removeID(club.Admins, userID)
	if err := s.saveClubs(ctx, clubs); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("clubID", clubID).Str("userID", userID).Msg("User left club")
	return club, nil
}

func removeID(ids []string, id string) []string {
	result := ids[:0]
	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}
