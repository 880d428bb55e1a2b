package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

func newAuthFixture() (AuthService, AuditService, store.Store) {
	st := store.NewMemoryStore()
	audit := NewAuditService(st, zerolog.Nop())
	return NewAuthService(st, audit, zerolog.Nop()), audit, st
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            "Ada Lovelace",
		Email:           "ada@example.edu",
		Year:            "Sophomore",
		Branch:          "Mathematics",
		Interests:       []string{"computing"},
		Password:        "secret1",
		ConfirmPassword: "secret1",
		PrivacyConsent:  true,
	}
}

func TestIsCollegeEmail(t *testing.T) {
	accepted := []string{
		"a@mit.edu",
		"b@st-marys.college.org",
		"c@iitb.ac.in",
		"d@openuniversity.net",
	}
	for _, email := range accepted {
		if !IsCollegeEmail(email) {
			t.Fatalf("expected %q to be accepted", email)
		}
	}

	rejected := []string{
		"a@gmail.com",
		"edu@gmail.com", // marker in local part only
		"plainstring",
		"@mit.edu",
		"a@",
	}
	for _, email := range rejected {
		if IsCollegeEmail(email) {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   error
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.Name = " " }, apperrors.ErrMissingField},
		{"missing year", func(r *dto.RegisterRequest) { r.Year = "" }, apperrors.ErrMissingField},
		{"missing branch", func(r *dto.RegisterRequest) { r.Branch = "" }, apperrors.ErrMissingField},
		{"no consent", func(r *dto.RegisterRequest) { r.PrivacyConsent = false }, apperrors.ErrConsentRequired},
		{"personal email", func(r *dto.RegisterRequest) { r.Email = "ada@gmail.com" }, apperrors.ErrInvalidEmail},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc"; r.ConfirmPassword = "abc" }, apperrors.ErrWeakPassword},
		{"mismatch", func(r *dto.RegisterRequest) { r.ConfirmPassword = "different" }, apperrors.ErrPasswordMismatch},
	}

	for _, tc := range cases {
		req := validRegistration()
		tc.mutate(req)
		if _, err := svc.Register(ctx, req); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	dup := validRegistration()
	dup.Email = "ADA@Example.EDU"
	if _, err := svc.Register(ctx, dup); !errors.Is(err, apperrors.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if user.Password == "secret1" {
		t.Fatal("password stored in plain text")
	}
	if user.Role != models.RoleStudent {
		t.Fatalf("new accounts must start as students, got %q", user.Role)
	}
}

func TestAuthenticateUniformFailure(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	svc.Register(ctx, validRegistration())

	_, unknownErr := svc.Authenticate(ctx, "nobody@example.edu", "whatever")
	_, wrongErr := svc.Authenticate(ctx, "ada@example.edu", "wrong-password")

	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) || !errors.Is(wrongErr, apperrors.ErrInvalidCredentials) {
		t.Fatalf("both failure modes must return ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	svc.Register(ctx, validRegistration())
	user, err := svc.Authenticate(ctx, "Ada@Example.edu", "secret1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Email != "ada@example.edu" {
		t.Fatalf("unexpected user: %q", user.Email)
	}
}

func makeAdmin(t *testing.T, st store.Store, userID string) {
	t.Helper()
	ctx := context.Background()
	users := make(map[string]*models.User)
	if err := st.Get(ctx, store.BucketUsers, &users); err != nil {
		t.Fatalf("load users: %v", err)
	}
	users[userID].Role = models.RoleAdmin
	if err := st.Put(ctx, store.BucketUsers, users); err != nil {
		t.Fatalf("save users: %v", err)
	}
}

func TestPromoteRequiresAdminActor(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	actor, _ := svc.Register(ctx, validRegistration())
	targetReq := validRegistration()
	targetReq.Email = "grace@example.edu"
	target, _ := svc.Register(ctx, targetReq)

	if _, err := svc.Promote(ctx, target.ID, actor.ID); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("student actor must not promote, got %v", err)
	}
}

func TestPromoteAndDemoteAudited(t *testing.T) {
	svc, audit, st := newAuthFixture()
	ctx := context.Background()

	actor, _ := svc.Register(ctx, validRegistration())
	makeAdmin(t, st, actor.ID)

	targetReq := validRegistration()
	targetReq.Email = "grace@example.edu"
	target, _ := svc.Register(ctx, targetReq)

	promoted, err := svc.Promote(ctx, target.ID, actor.ID)
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if promoted.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", promoted.Role)
	}

	demoted, err := svc.Demote(ctx, target.ID, actor.ID)
	if err != nil {
		t.Fatalf("demote failed: %v", err)
	}
	if demoted.Role != models.RoleStudent {
		t.Fatalf("expected student role, got %q", demoted.Role)
	}

	entries, _ := audit.Recent(ctx, 10)
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	actions := map[string]bool{}
	for _, e := range entries {
		actions[e.Action] = true
		if e.TargetType != "user" || e.TargetID != target.ID {
			t.Fatalf("unexpected audit target: %+v", e)
		}
	}
	if !actions["made_user_admin"] || !actions["removed_user_admin"] {
		t.Fatalf("missing audit actions: %v", actions)
	}
}

func TestListUsersSearch(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	svc.Register(ctx, validRegistration())
	other := validRegistration()
	other.Name = "Grace Hopper"
	other.Email = "grace@example.edu"
	svc.Register(ctx, other)

	matches, err := svc.ListUsers(ctx, "grace")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Grace Hopper" {
		t.Fatalf("unexpected search result: %v", matches)
	}

	all, _ := svc.ListUsers(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}
