package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
	"github.com/eventhub/eventhub-api/internal/infrastructure/memstore"
)

type stubRegistrationService struct {
	registerFn func(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error)
}

func (s *stubRegistrationService) Register(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error) {
	return s.registerFn(ctx, input)
}

func TestRegistrationHandler_List_RequiresFilter(t *testing.T) {
	e := newTestEcho()
	handler := NewRegistrationHandler(nil, memstore.NewRegistrationRepository(memstore.New()))

	req := httptest.NewRequest(http.MethodGet, "/api/registrations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if he.Message != "Either eventId or userId query parameter is required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRegistrationHandler_List_ByEvent(t *testing.T) {
	e := newTestEcho()
	store := memstore.New()
	registrations := memstore.NewRegistrationRepository(store)
	ctx := context.Background()
	_, _ = registrations.Create(ctx, &domain.Registration{EventID: 1, UserID: 1, Status: domain.RegistrationRegistered})
	_, _ = registrations.Create(ctx, &domain.Registration{EventID: 2, UserID: 1, Status: domain.RegistrationRegistered})

	handler := NewRegistrationHandler(nil, registrations)

	req := httptest.NewRequest(http.MethodGet, "/api/registrations?eventId=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["eventId"] != float64(1) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegistrationHandler_List_BadFilter(t *testing.T) {
	e := newTestEcho()
	handler := NewRegistrationHandler(nil, memstore.NewRegistrationRepository(memstore.New()))

	req := httptest.NewRequest(http.MethodGet, "/api/registrations?eventId=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestRegistrationHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistrationService{
		registerFn: func(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error) {
			if input.EventID != 1 || input.UserID != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Registration{ID: 1, EventID: 1, UserID: 3, Status: domain.RegistrationRegistered}, nil
		},
	}
	handler := NewRegistrationHandler(stub, nil)

	body := strings.NewReader(`{"eventId":1,"userId":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "registered" {
		t.Fatalf("unexpected status: %v", resp["status"])
	}
}

func TestRegistrationHandler_Create_PolicyErrorsPassThrough(t *testing.T) {
	e := newTestEcho()
	for _, want := range []error{
		domain.ErrDuplicateRegistration,
		domain.ErrEventNotFound,
		domain.ErrRegistrationClosed,
		domain.ErrCapacityExceeded,
	} {
		stub := &stubRegistrationService{
			registerFn: func(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error) {
				return nil, want
			},
		}
		handler := NewRegistrationHandler(stub, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/registrations", strings.NewReader(`{"eventId":1,"userId":3}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Create(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestRegistrationHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistrationService{
		registerFn: func(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRegistrationHandler(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/registrations", strings.NewReader(`{"eventId":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
