package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tls-123321/Event-Manager/internal/domain"
)

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	resp, err := c.do(ctx, http.MethodGet, "/events/", nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, fmt.Errorf("list events: unexpected status %d", resp.StatusCode)
	}

	var body []eventResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(body))
	for _, e := range body {
		events = append(events, e.toDomain())
	}

	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d/", id), nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: event %d", domain.ErrNotFound, id)
	}
	if !ok(resp) {
		return nil, fmt.Errorf("get event: unexpected status %d", resp.StatusCode)
	}

	var body eventResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	event := body.toDomain()
	return &event, nil
}
