package gateway

import (
	"time"

	"github.com/tls-123321/Event-Manager/internal/domain"
)

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// A 200-status login response may still lack an access token and carry only a
// detail message; both shapes are decoded from the same struct.
type loginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Detail  string `json:"detail"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

type createBookingRequest struct {
	Event int64 `json:"event"`
}

type eventResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r eventResponse) toDomain() domain.Event {
	return domain.Event{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		ThumbnailURL: r.ThumbnailURL,
		CreatedAt:    r.CreatedAt,
	}
}

// bookingResponse covers both the detail shape (with can_cancel) and the list
// shape (with event_thumbnail); absent fields stay zero.
type bookingResponse struct {
	Code             string    `json:"code"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	EventTitle       string    `json:"event_title"`
	EventStartDate   time.Time `json:"event_start_date"`
	EventEndDate     time.Time `json:"event_end_date"`
	EventDescription string    `json:"event_description"`
	EventThumbnail   string    `json:"event_thumbnail"`
	CanCancel        bool      `json:"can_cancel"`
}

func (r bookingResponse) toDomain() domain.Booking {
	return domain.Booking{
		Code:             r.Code,
		Status:           domain.BookingStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		EventTitle:       r.EventTitle,
		EventStartDate:   r.EventStartDate,
		EventEndDate:     r.EventEndDate,
		EventDescription: r.EventDescription,
		EventThumbnail:   r.EventThumbnail,
		CanCancel:        r.CanCancel,
	}
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r userResponse) toDomain() domain.User {
	return domain.User{
		ID:       r.ID,
		Username: r.Username,
		Email:    r.Email,
	}
}
