package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/infrastructure/memstore"
)

func newTestRouter(t *testing.T) (*memstore.Store, http.Handler) {
	t.Helper()
	store := memstore.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users := memstore.NewUserRepository(store)
	if _, err := users.Create(context.Background(), &domain.User{
		Username: "admin",
		Password: string(hash),
		Email:    "admin@eventhub.com",
		FullName: "Admin User",
		Role:     domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return store, NewRouter(store, nil, "test-secret", zerolog.Nop())
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()
	body := strings.NewReader(`{"username":"admin","password":"admin123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token")
	}
	return resp.Token
}

func TestRouter_HealthIsPublic(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ReadinessWithoutRedis(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Authentication required" {
		t.Fatalf("unexpected error envelope: %+v", resp)
	}
}

func TestRouter_LoginThenAccess(t *testing.T) {
	_, router := newTestRouter(t)
	token := loginToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var stats map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"activeEvents", "totalRegistrations", "communities", "revenue"} {
		if _, ok := stats[key]; !ok {
			t.Fatalf("missing %s in stats payload: %+v", key, stats)
		}
	}
}

func TestRouter_SignupIsPublic(t *testing.T) {
	_, router := newTestRouter(t)

	body := strings.NewReader(`{
		"username": "newbie",
		"password": "secret1",
		"email": "newbie@example.com",
		"fullName": "New User"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UserListIsAdminOnly(t *testing.T) {
	_, router := newTestRouter(t)

	// Sign up a participant and log in as them.
	body := strings.NewReader(`{
		"username": "runner",
		"password": "secret1",
		"email": "runner@example.com",
		"fullName": "Runner"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed with %d", rec.Code)
	}

	loginBody := strings.NewReader(`{"username":"runner","password":"secret1"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", loginBody)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d", rec.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for participant, got %d", rec.Code)
	}

	adminToken := loginToken(t, router)
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestRouter_RegistrationPolicyOverHTTP(t *testing.T) {
	store, router := newTestRouter(t)
	token := loginToken(t, router)

	capacity := 1
	events := memstore.NewEventRepository(store)
	if _, err := events.Create(context.Background(), &domain.Event{
		Title:            "Tiny Run",
		OrganizerID:      1,
		Status:           domain.EventPublished,
		Capacity:         &capacity,
		RegistrationOpen: true,
	}); err != nil {
		t.Fatalf("create event: %v", err)
	}

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/registrations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := post(`{"eventId":1,"userId":1}`); rec.Code != http.StatusCreated {
		t.Fatalf("first registration: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec := post(`{"eventId":1,"userId":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate: expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != domain.ErrDuplicateRegistration.Error() {
		t.Fatalf("unexpected message: %q", resp["message"])
	}

	if rec := post(`{"eventId":1,"userId":2}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("over capacity: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
