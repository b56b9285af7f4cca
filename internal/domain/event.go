package domain

import "time"

type Event struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e Event) IsUpcoming(now time.Time) bool {
	return e.StartDate.After(now)
}

func (e Event) IsPast(now time.Time) bool {
	return e.EndDate.Before(now)
}
