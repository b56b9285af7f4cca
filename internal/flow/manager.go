package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultCodeDisplayWindow = 10 * time.Second

// Manager tracks the per-event booking flows: creating a booking and showing
// its fresh code for a limited window, and looking up / canceling a booking
// by code. The two sub-flows are independent and flows for different events
// never block each other. The code display window is cosmetic: when it
// expires the code disappears from view, the booking itself stays valid.
type Manager struct {
	api     ports.BookingAPI
	session ports.SessionStore
	window  time.Duration
	logger  logger.Logger

	mu     sync.Mutex
	events map[int64]*eventState
}

type eventState struct {
	booking   bool
	freshCode string
	codeTimer *time.Timer
	lookingUp bool
	detail    *domain.Booking
	lookupErr string
	canceling bool
}

// State is a point-in-time copy of one event's flow state, safe to render.
type State struct {
	BookingInFlight bool
	FreshCode       string
	Detail          *domain.Booking
	LookupError     string
	Canceling       bool
}

func New(api ports.BookingAPI, session ports.SessionStore, window time.Duration, logger logger.Logger) *Manager {
	if window <= 0 {
		window = DefaultCodeDisplayWindow
	}
	return &Manager{
		api:     api,
		session: session,
		window:  window,
		logger:  logger,
		events:  make(map[int64]*eventState),
	}
}

// Book creates a booking for the event and shows its code until the display
// window closes. It refuses without a network call when the client is not
// authenticated or a booking for this event is already in flight.
func (m *Manager) Book(ctx context.Context, eventID int64) (*domain.Booking, error) {
	if !m.session.IsAuthenticated() {
		return nil, domain.ErrAuthRequired
	}

	m.mu.Lock()
	st := m.state(eventID)
	if st.booking {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: booking for event %d", domain.ErrActionInProgress, eventID)
	}
	st.booking = true
	m.mu.Unlock()

	booking, err := m.api.CreateBooking(ctx, eventID)

	m.mu.Lock()
	defer m.mu.Unlock()
	st.booking = false

	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	m.showCode(st, booking.Code)

	m.logger.Info("booking created",
		logger.String("code", booking.Code),
		logger.Int64("event_id", eventID),
	)

	return booking, nil
}

// Lookup fetches a booking by code and keeps the result attached to the
// event. Codes are case-insensitive: input is trimmed and uppercased before
// the request. An empty code is refused without a request.
func (m *Manager) Lookup(ctx context.Context, eventID int64, rawCode string) (*domain.Booking, error) {
	code := NormalizeCode(rawCode)
	if code == "" {
		err := fmt.Errorf("%w: enter booking code", domain.ErrValidation)
		m.setLookupErr(eventID, err)
		return nil, err
	}

	m.mu.Lock()
	st := m.state(eventID)
	if st.lookingUp {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: lookup for event %d", domain.ErrActionInProgress, eventID)
	}
	st.lookingUp = true
	m.mu.Unlock()

	booking, err := m.api.BookingDetail(ctx, code)

	m.mu.Lock()
	defer m.mu.Unlock()
	st.lookingUp = false

	if err != nil {
		st.detail = nil
		st.lookupErr = err.Error()
		return nil, fmt.Errorf("booking lookup: %w", err)
	}

	st.detail = booking
	st.lookupErr = ""
	return booking, nil
}

// Cancel cancels the booking previously loaded via Lookup. A booking whose
// detail reports CanCancel=false is refused before any request goes out; the
// server enforces the same rule on its side.
func (m *Manager) Cancel(ctx context.Context, eventID int64) (*domain.Booking, error) {
	m.mu.Lock()
	st := m.state(eventID)
	if st.canceling {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: cancel for event %d", domain.ErrActionInProgress, eventID)
	}

	detail := st.detail
	if detail == nil {
		m.mu.Unlock()
		return nil, domain.ErrNoBookingLoaded
	}
	if !detail.CanCancel {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrNotCancelable, detail.Code)
	}

	st.canceling = true
	m.mu.Unlock()

	booking, err := m.api.CancelBooking(ctx, detail.Code)

	m.mu.Lock()
	defer m.mu.Unlock()
	st.canceling = false

	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	st.detail = nil
	st.lookupErr = ""
	m.hideCode(st)

	m.logger.Info("booking canceled",
		logger.String("code", booking.Code),
		logger.Int64("event_id", eventID),
	)

	return booking, nil
}

// CloseDetail drops a previously looked-up booking from view.
func (m *Manager) CloseDetail(eventID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(eventID)
	st.detail = nil
	st.lookupErr = ""
}

func (m *Manager) Snapshot(eventID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, exists := m.events[eventID]
	if !exists {
		return State{}
	}

	snap := State{
		BookingInFlight: st.booking,
		FreshCode:       st.freshCode,
		LookupError:     st.lookupErr,
		Canceling:       st.canceling,
	}
	if st.detail != nil {
		detail := *st.detail
		snap.Detail = &detail
	}

	return snap
}

func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// state returns the tracked state for an event, creating it on first use.
// Callers must hold mu.
func (m *Manager) state(eventID int64) *eventState {
	st, exists := m.events[eventID]
	if !exists {
		st = &eventState{}
		m.events[eventID] = st
	}
	return st
}

// showCode displays a fresh code and arms the expiry timer. Callers must
// hold mu.
func (m *Manager) showCode(st *eventState, code string) {
	m.hideCode(st)
	st.freshCode = code

	st.codeTimer = time.AfterFunc(m.window, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// A newer booking may have replaced the code in the meantime.
		if st.freshCode == code {
			st.freshCode = ""
			st.codeTimer = nil
		}
	})
}

// hideCode clears the displayed code and disarms its timer. Callers must
// hold mu.
func (m *Manager) hideCode(st *eventState) {
	if st.codeTimer != nil {
		st.codeTimer.Stop()
		st.codeTimer = nil
	}
	st.freshCode = ""
}

func (m *Manager) setLookupErr(eventID int64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(eventID)
	st.detail = nil
	st.lookupErr = err.Error()
}
