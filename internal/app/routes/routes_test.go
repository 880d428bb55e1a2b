package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/bootstrap"
	"github.com/emrek/campushub/internal/config"
)

func buildTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "test"

	st := store.NewMemoryStore()
	deps, err := bootstrap.BuildDependencies(cfg, st, zerolog.Nop())
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	return bootstrap.SetupRouter(cfg, deps, zerolog.Nop()), st
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) (string, string) {
	t.Helper()

	body, _ := json.Marshal(map[string]interface{}{
		"name":            "Test User",
		"email":           email,
		"year":            "Freshman",
		"branch":          "CS",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"privacyConsent":  true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", resp.Code, resp.Body.String())
	}

	var parsed struct {
		Data struct {
			Token struct {
				AccessToken string `json:"accessToken"`
			} `json:"token"`
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("parse register response: %v", err)
	}
	return parsed.Data.Token.AccessToken, parsed.Data.User.ID
}

func login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", resp.Code, resp.Body.String())
	}

	var parsed struct {
		Data struct {
			Token struct {
				AccessToken string `json:"accessToken"`
			} `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(resp.Body.Bytes(), &parsed)
	return parsed.Data.Token.AccessToken
}

func TestAdminRoutesRBAC(t *testing.T) {
	router, st := buildTestRouter(t)

	token, userID := registerAndLogin(t, router, "student@example.edu")

	// No token
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	// Student token
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	resp2 := httptest.NewRecorder()
	router.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", resp2.Code)
	}

	// Grant admin and log in again for a token carrying the new role
	users := make(map[string]*models.User)
	if err := st.Get(context.Background(), store.BucketUsers, &users); err != nil {
		t.Fatalf("load users: %v", err)
	}
	users[userID].Role = models.RoleAdmin
	if err := st.Put(context.Background(), store.BucketUsers, users); err != nil {
		t.Fatalf("save users: %v", err)
	}
	adminToken := login(t, router, "student@example.edu")

	req3 := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req3.Header.Set("Authorization", "Bearer "+adminToken)
	resp3 := httptest.NewRecorder()
	router.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", resp3.Code, resp3.Body.String())
	}
}

func TestHealthEndpointPublic(t *testing.T) {
	router, _ := buildTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", resp.Code)
	}
}

func TestVoteRejectsUnknownDirection(t *testing.T) {
	router, _ := buildTestRouter(t)
	token, _ := registerAndLogin(t, router, "voter@example.edu")

	body, _ := json.Marshal(map[string]string{"content": "a confession long enough to pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/confessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("submit returned %d: %s", resp.Code, resp.Body.String())
	}

	var parsed struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("parse submit response: %v", err)
	}

	vote := func(direction string) int {
		body, _ := json.Marshal(map[string]string{"direction": direction})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/confessions/"+parsed.Data.ID+"/vote", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := vote("sideways"); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown direction, got %d", code)
	}
	if code := vote(""); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank direction, got %d", code)
	}
	if code := vote("upvote"); code != http.StatusOK {
		t.Fatalf("expected 200 for upvote, got %d", code)
	}
	if code := vote("downvote"); code != http.StatusOK {
		t.Fatalf("expected 200 for downvote, got %d", code)
	}
}

func TestRegisterRejectsPersonalEmail(t *testing.T) {
	router, _ := buildTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"name":            "Test User",
		"email":           "someone@gmail.com",
		"year":            "Freshman",
		"branch":          "CS",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"privacyConsent":  true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for personal email, got %d: %s", resp.Code, resp.Body.String())
	}
}
