package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ProfileService struct {
	api     ports.ProfileAPI
	session ports.SessionStore
	logger  logger.Logger
}

func NewProfileService(api ports.ProfileAPI, session ports.SessionStore, logger logger.Logger) *ProfileService {
	return &ProfileService{
		api:     api,
		session: session,
		logger:  logger,
	}
}

// Me fetches the current user and their bookings, in that order. A 401 from
// either call means the stored token is no longer valid: the session is
// cleared immediately and the caller must re-authenticate.
func (s *ProfileService) Me(ctx context.Context) (*domain.User, []domain.Booking, error) {
	if !s.session.IsAuthenticated() {
		return nil, nil, domain.ErrAuthRequired
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return nil, nil, s.authErr(fmt.Errorf("get current user: %w", err))
	}

	bookings, err := s.api.ListBookings(ctx)
	if err != nil {
		return nil, nil, s.authErr(fmt.Errorf("list bookings: %w", err))
	}

	return user, bookings, nil
}

func (s *ProfileService) authErr(err error) error {
	if errors.Is(err, domain.ErrAuthRequired) {
		if clearErr := s.session.Clear(); clearErr != nil {
			s.logger.Error("failed to clear invalid session",
				logger.String("error", clearErr.Error()),
			)
		}
		s.logger.Info("session invalidated by server, cleared local tokens")
	}
	return err
}
