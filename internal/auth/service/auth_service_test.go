package service

import (
	"context"
	"errors"
	"testing"
	"time"

	authrepo "github.com/KarimovRD/fullstack-todo/backend/internal/auth/repository"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/clock"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	userrepo "github.com/KarimovRD/fullstack-todo/backend/internal/user/repository"
)

func setupAuthService(t *testing.T) (*AuthService, *clock.MockClock) {
	t.Helper()

	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}

	clk := clock.NewMockClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	svc := NewAuthService(
		userrepo.NewMemoryRepository(),
		authrepo.NewMemoryTokenRepository(),
		NewTokenIssuer(),
		clk,
		log,
	)

	return svc, clk
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := setupAuthService(t)

	if err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "other"})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	// The original password must survive the rejected re-registration.
	if _, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Errorf("login with original password failed: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "other"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for the rejected password, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if token != "ecila_token" {
		t.Errorf("expected token %q, got %q", "ecila_token", token)
	}

	username, err := svc.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("issued token did not resolve: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected username alice, got %q", username)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "pw1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RepeatedLoginsAllowed(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	second, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	// The derivation is deterministic, and the earlier token stays valid.
	if first != second {
		t.Errorf("expected identical tokens, got %q and %q", first, second)
	}
	if _, err := svc.ResolveToken(ctx, first); err != nil {
		t.Errorf("first token stopped resolving: %v", err)
	}
}

func TestAuthService_ResolveToken_Unknown(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.ResolveToken(context.Background(), "nosuch_token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
