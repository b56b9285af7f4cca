package ports

import (
	"context"

	"github.com/tls-123321/Event-Manager/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Tokens, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
}

type EventAPI interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
}

type ProfileAPI interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, eventID int64) (*domain.Booking, error)
	BookingDetail(ctx context.Context, code string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, code string) (*domain.Booking, error)
}
