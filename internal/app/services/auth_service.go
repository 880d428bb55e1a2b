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
	"github.com/emrek/campushub/internal/pkg/auth"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// collegeEmailMarkers are the substrings accepted in the domain part of a
// registration email.
var collegeEmailMarkers = []string{".edu", ".ac.", "college", "university"}

// AuthService defines the interface for identity operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context, search string) ([]*models.User, error)
	Promote(ctx context.Context, targetID, adminID string) (*models.User, error)
	Demote(ctx context.Context, targetID, adminID string) (*models.User, error)
}

type authServiceImpl struct {
	store  store.Store
	audit  AuditService
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(st store.Store, audit AuditService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:  st,
		audit:  audit,
		logger: logger,
	}
}

func (s *authServiceImpl) loadUsers(ctx context.Context) (map[string]*models.User, error) {
	users := make(map[string]*models.User)
	if err := s.store.Get(ctx, store.BucketUsers, &users); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return users, nil
}

func (s *authServiceImpl) saveUsers(ctx context.Context, users map[string]*models.User) error {
	if err := s.store.Put(ctx, store.BucketUsers, users); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// IsCollegeEmail reports whether the domain part of the email matches the
// institutional allow-list.
func IsCollegeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, marker := range collegeEmailMarkers {
		if strings.Contains(domain, marker) {
			return true
		}
	}
	return false
}

func findUserByEmail(users map[string]*models.User, email string) *models.User {
	lower := strings.ToLower(email)
	for _, user := range users {
		if strings.ToLower(user.Email) == lower {
			return user
		}
	}
	return nil
}

// Register validates a registration candidate and creates the account. All
// validation happens before any write; the stored credential is a bcrypt hash.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewMissingFieldError("your name")
	}
	if strings.TrimSpace(req.Year) == "" {
		return nil, apperrors.NewMissingFieldError("your academic year")
	}
	if strings.TrimSpace(req.Branch) == "" {
		return nil, apperrors.NewMissingFieldError("your major/branch")
	}
	if !req.PrivacyConsent {
		return nil, apperrors.ErrConsentRequired
	}
	if !IsCollegeEmail(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if findUserByEmail(users, req.Email) != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	now := helpers.NowISO()
	user := &models.User{
		ID:         uuid.New().String(),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       strings.TrimSpace(req.Name),
		Year:       req.Year,
		Branch:     strings.TrimSpace(req.Branch),
		Interests:  req.Interests,
		Password:   hashed,
		Role:       models.RoleStudent,
		IsVerified: true,
		JoinedDate: now,
		LastLogin:  now,
	}

	users[user.ID] = user
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password return the
// same error so accounts cannot be enumerated.
func (s *authServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	user := findUserByEmail(users, email)
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	user.LastLogin = helpers.NowISO()
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("userID", user.ID).Msg("User authenticated")
	return user, nil
}

// GetUser retrieves a user by id
func (s *authServiceImpl) GetUser(ctx context.Context, userID string) (*models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return user, nil
}

// ListUsers returns users matching the search query (name or email, case
// insensitive), sorted by join date descending.
func (s *authServiceImpl) ListUsers(ctx context.Context, search string) ([]*models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(search)
	result := make([]*models.User, 0, len(users))
	for _, user := range users {
		if lower != "" &&
			!strings.Contains(strings.ToLower(user.Name), lower) &&
			!strings.Contains(strings.ToLower(user.Email), lower) {
			continue
		}
		result = append(result, user)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].JoinedDate > result[j].JoinedDate
	})
	return result, nil
}

// Promote elevates a user to the admin role. Only an existing admin may do this;
// the action is audited after the write succeeds.
func (s *authServiceImpl) Promote(ctx context.Context, targetID, adminID string) (*models.User, error) {
	return s.setRole(ctx, targetID, adminID, models.RoleAdmin, "made_user_admin")
}

// Demote returns a user to the student role
func (s *authServiceImpl) Demote(ctx context.Context, targetID, adminID string) (*models.User, error) {
	return s.setRole(ctx, targetID, adminID, models.RoleStudent, "removed_user_admin")
}

func (s *authServiceImpl) setRole(ctx context.Context, targetID, adminID string, role models.RoleType, action string) (*models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	actor, ok := users[adminID]
	if !ok || actor.Role != models.RoleAdmin {
		return nil, apperrors.NewUnauthorizedError("admin access required")
	}

	target, ok := users[targetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	target.Role = role
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	if err := s.audit.Append(ctx, adminID, action, "user", targetID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("targetID", targetID).Str("role", string(role)).Msg("User role changed")
	return target, nil
}
