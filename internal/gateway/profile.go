package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tls-123321/Event-Manager/internal/domain"
)

func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/profile/me/", nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrAuthRequired
	}
	if !ok(resp) {
		return nil, fmt.Errorf("get current user: unexpected status %d", resp.StatusCode)
	}

	var body userResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	user := body.toDomain()
	return &user, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	resp, err := c.do(ctx, http.MethodGet, "/bookings/", nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrAuthRequired
	}
	if !ok(resp) {
		return nil, fmt.Errorf("list bookings: unexpected status %d", resp.StatusCode)
	}

	var body []bookingResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(body))
	for _, b := range body {
		bookings = append(bookings, b.toDomain())
	}

	return bookings, nil
}
