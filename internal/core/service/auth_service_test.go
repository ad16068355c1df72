package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/infrastructure/memstore"
)

func seedUser(t *testing.T, store *memstore.Store, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := memstore.NewUserRepository(store).Create(context.Background(), &domain.User{
		Username: username,
		Password: string(hash),
		Email:    username + "@example.com",
		FullName: username,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	store := memstore.New()
	user := seedUser(t, store, "carol", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(memstore.NewUserRepository(store), "secret", time.Hour)

	token, got, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "carol" {
		t.Fatalf("expected username carol, got %v", claims["username"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if int(claims["id"].(float64)) != user.ID {
		t.Fatalf("expected id %d, got %v", user.ID, claims["id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	store := memstore.New()
	seedUser(t, store, "dave", "goodpass", domain.RoleParticipant)
	svc := NewAuthService(memstore.NewUserRepository(store), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	store := memstore.New()
	svc := NewAuthService(memstore.NewUserRepository(store), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	store := memstore.New()
	svc := NewAuthService(memstore.NewUserRepository(store), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_TokenExpiry(t *testing.T) {
	store := memstore.New()
	seedUser(t, store, "erin", "pass", domain.RoleOrganizer)
	svc := NewAuthService(memstore.NewUserRepository(store), "secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	exp := int64(claims["exp"].(float64))
	want := time.Now().Add(time.Hour).Unix()
	if exp < want-5 || exp > want+5 {
		t.Fatalf("expected exp near %d, got %d", want, exp)
	}
}
