package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailInUse
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("registration must never produce an admin account")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob", "bob@example.com", "pass")
	if _, err := svc.Register(context.Background(), "bobby", "bob@example.com", "pass2"); err != domain.ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
	if isAdmin, _ := claims["is_admin"].(bool); isAdmin {
		t.Fatalf("expected is_admin claim false")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	// an unregistered email must be indistinguishable from a wrong password
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "erin", "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile lookup failed: %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
