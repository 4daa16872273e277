package service

import (
	"context"
	"errors"

	authdomain "github.com/KarimovRD/fullstack-todo/backend/internal/auth/domain"
	authrepo "github.com/KarimovRD/fullstack-todo/backend/internal/auth/repository"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/clock"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	"github.com/KarimovRD/fullstack-todo/backend/internal/observability/metrics"
	userdomain "github.com/KarimovRD/fullstack-todo/backend/internal/user/domain"
	userrepo "github.com/KarimovRD/fullstack-todo/backend/internal/user/repository"
)

// AuthService is the user registry plus the token issuer: it owns
// registration, credential checks and the token table the auth guard
// resolves against.
type AuthService struct {
	users  userrepo.Repository
	tokens authrepo.TokenRepository
	issuer *TokenIssuer
	clock  clock.Clock
	log    *logger.Logger
}

func NewAuthService(
	users userrepo.Repository,
	tokens authrepo.TokenRepository,
	issuer *TokenIssuer,
	clk clock.Clock,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		issuer: issuer,
		clock:  clk,
		log:    log,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	account := userdomain.Account{
		Username:  input.Username,
		Password:  input.Password,
		CreatedAt: s.clock.Now(),
	}

	if err := s.users.Create(ctx, account); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			return ErrDuplicateUser
		}
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "user_registered",
	}).Info("user registered")

	return nil
}

// Login checks the stored plaintext password and mints a bearer token. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	account, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if account.Password != input.Password {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", ErrInvalidCredentials
	}

	token := s.issuer.Issue(input.Username)
	session := authdomain.SessionToken{
		Token:    token,
		Username: input.Username,
		IssuedAt: s.clock.Now(),
	}

	if err := s.tokens.Save(ctx, session); err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_success",
	}).Info("login success")

	return token, nil
}

// ResolveToken maps a presented bearer token back to its username. Used by
// the auth guard middleware on every protected route.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (string, error) {
	session, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, authrepo.ErrTokenNotFound) {
			metrics.TokenLookupsTotal.WithLabelValues("miss").Inc()
			return "", ErrInvalidToken
		}
		return "", err
	}

	metrics.TokenLookupsTotal.WithLabelValues("hit").Inc()
	return session.Username, nil
}
