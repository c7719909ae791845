package services

import (
	"errors"
	"testing"

	"suponos_backend/internal/models"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(storage.NewMemoryStorage(t.TempDir()))
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	svc := newTestAuthService(t)

	user, err := svc.RegisterUser(models.InsertUser{
		Username: "admin", Email: "admin@suponos.com", Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.Password == "correct-horse-battery" {
		t.Fatal("password must be stored hashed, not in the clear")
	}

	resp, err := svc.LoginUser(models.Credentials{Username: "admin", Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("login must issue an access token")
	}

	claims, err := utils.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "admin" {
		t.Errorf("token claims mismatch: %+v", claims)
	}

	profile, err := svc.GetUserProfile(user.ID)
	if err != nil {
		t.Fatalf("GetUserProfile: %v", err)
	}
	if profile.Username != "admin" {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.RegisterUser(models.InsertUser{
		Username: "admin", Email: "admin@suponos.com", Password: "correct-horse-battery",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if _, err := svc.LoginUser(models.Credentials{Username: "admin", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown username yields the same error as a wrong password.
	if _, err := svc.LoginUser(models.Credentials{Username: "nobody", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsDuplicateAccount(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.RegisterUser(models.InsertUser{
		Username: "admin", Email: "admin@suponos.com", Password: "correct-horse-battery",
	}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	if _, err := svc.RegisterUser(models.InsertUser{
		Username: "admin", Email: "second@suponos.com", Password: "another-password",
	}); !errors.Is(err, ErrAccountExists) {
		t.Errorf("duplicate username: expected ErrAccountExists, got %v", err)
	}
	if _, err := svc.RegisterUser(models.InsertUser{
		Username: "admin2", Email: "admin@suponos.com", Password: "another-password",
	}); !errors.Is(err, ErrAccountExists) {
		t.Errorf("duplicate email: expected ErrAccountExists, got %v", err)
	}
}

func TestGetUserProfileUnknownID(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.GetUserProfile(9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
