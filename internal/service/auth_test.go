package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/productapi/productapi-go/internal/crypto"
	"github.com/productapi/productapi-go/internal/model"
)

func newTestAuthService() (*AuthService, *fakeUserStore, *crypto.TokenService) {
	store := newFakeUserStore()
	tokens := crypto.NewTokenService("test-secret", time.Hour)
	return NewAuthService(store, tokens), store, tokens
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService()

	tests := []struct {
		name string
		req  model.RegisterRequest
	}{
		{"empty username", model.RegisterRequest{Password: "pw", Email: "a@example.com"}},
		{"empty password", model.RegisterRequest{Username: "alice", Email: "a@example.com"}},
		{"empty email", model.RegisterRequest{Username: "alice", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if err != ErrRegisterFieldsRequired {
				t.Errorf("expected ErrRegisterFieldsRequired, got %v", err)
			}
		})
	}
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	svc, store, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "alice",
		Password: "password123",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.ID == 0 || resp.Username != "alice" || resp.Email != "alice@example.com" {
		t.Errorf("Register() = %+v", resp)
	}

	stored := store.users["alice"]
	if stored.PasswordHash == "password123" {
		t.Fatal("Register() stored the plaintext password")
	}
	match, err := crypto.VerifyPassword("password123", stored.PasswordHash)
	if err != nil || !match {
		t.Errorf("stored hash does not verify: match=%v err=%v", match, err)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	req := model.RegisterRequest{Username: "alice", Password: "pw", Email: "a@example.com"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err != ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	svc, store, _ := newTestAuthService()
	store.err = errStoreDown

	_, err := svc.Register(context.Background(), model.RegisterRequest{Username: "a", Password: "b", Email: "c"})
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestLogin_IssuesTokenWithIdentity(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, model.RegisterRequest{Username: "alice", Password: "pw", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := tokens.Validate(resp.Token)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "alice" {
		t.Errorf("claims = {%d %q}, want {%d %q}", claims.UserID, claims.Username, user.ID, "alice")
	}
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{Username: "alice", Password: "pw", Email: "a@example.com"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, model.LoginRequest{Username: "alice", Password: "nope"})
	_, unknownUser := svc.Login(ctx, model.LoginRequest{Username: "mallory", Password: "pw"})

	if wrongPassword != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownUser != ErrInvalidCredentials {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "alice"})
	if err != ErrLoginFieldsRequired {
		t.Errorf("expected ErrLoginFieldsRequired, got %v", err)
	}
}
