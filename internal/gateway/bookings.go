package gateway

import (
	"context"
	"net/http"

	"github.com/tls-123321/Event-Manager/internal/domain"
)

func (c *Client) CreateBooking(ctx context.Context, eventID int64) (*domain.Booking, error) {
	resp, err := c.do(ctx, http.MethodPost, "/bookings/create/", createBookingRequest{Event: eventID}, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrAuthRequired
	}
	if !ok(resp) {
		return nil, apiError(resp, domain.ErrValidation, "failed to create booking")
	}

	var body bookingResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	booking := body.toDomain()
	return &booking, nil
}

// BookingDetail needs no session: the code itself is the capability token.
func (c *Client) BookingDetail(ctx context.Context, code string) (*domain.Booking, error) {
	resp, err := c.do(ctx, http.MethodGet, "/bookings/"+code+"/", nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, apiError(resp, domain.ErrNotFound, "booking not found")
	}

	var body bookingResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	booking := body.toDomain()
	return &booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, code string) (*domain.Booking, error) {
	resp, err := c.do(ctx, http.MethodPut, "/bookings/"+code+"/cancel/", nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, apiError(resp, domain.ErrValidation, "failed to cancel booking")
	}

	var body bookingResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	booking := body.toDomain()
	return &booking, nil
}
