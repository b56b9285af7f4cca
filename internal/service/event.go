package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports"
)

type EventService struct {
	api ports.EventAPI
}

func NewEventService(api ports.EventAPI) *EventService {
	return &EventService{api: api}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.api.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Search fetches the full list and filters it locally.
func (s *EventService) Search(ctx context.Context, query string) ([]domain.Event, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEvents(events, query), nil
}

// FilterEvents keeps events whose title or description contains query,
// case-insensitively. A blank query keeps everything.
func FilterEvents(events []domain.Event, query string) []domain.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}

	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), query) ||
			strings.Contains(strings.ToLower(e.Description), query) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}
