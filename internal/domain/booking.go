package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive   BookingStatus = "Active"
	BookingStatusCanceled BookingStatus = "Canceled"
	BookingStatusExpired  BookingStatus = "Expired"
)

// Booking is addressable by its code alone: the code is the capability to
// view and cancel it, no session required.
type Booking struct {
	Code             string        `json:"code"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	EventTitle       string        `json:"event_title"`
	EventStartDate   time.Time     `json:"event_start_date"`
	EventEndDate     time.Time     `json:"event_end_date"`
	EventDescription string        `json:"event_description"`
	EventThumbnail   string        `json:"event_thumbnail,omitempty"`

	// CanCancel is only populated by the booking detail lookup. The server
	// enforces it as well; the client gate is a courtesy, not security.
	CanCancel bool `json:"can_cancel"`
}

func (b Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}
