package service

import (
	"context"
	"fmt"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AuthService struct {
	api     ports.AuthAPI
	session ports.SessionStore
	logger  logger.Logger
}

func NewAuthService(api ports.AuthAPI, session ports.SessionStore, logger logger.Logger) *AuthService {
	return &AuthService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

// Login authenticates against the server and persists the returned token
// pair. On any failure nothing is stored and the previous session, if any,
// is left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	tokens, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err = s.session.SetTokens(tokens.Access, tokens.Refresh); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("logged in", logger.String("email", email))
	return nil
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}

	if err := s.api.Register(ctx, username, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	return nil
}

// Logout revokes the session server-side on a best-effort basis and always
// clears the local session, server failure or not.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("server-side logout failed, clearing session anyway",
			logger.String("error", err.Error()),
		)
	}

	if err := s.session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info("logged out")
	return nil
}

func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}
