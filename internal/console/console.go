package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/flow"
)

type AuthSvc interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
}

type EventSvc interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	Search(ctx context.Context, query string) ([]domain.Event, error)
}

type ProfileSvc interface {
	Me(ctx context.Context) (*domain.User, []domain.Booking, error)
}

type BookingFlow interface {
	Book(ctx context.Context, eventID int64) (*domain.Booking, error)
	Lookup(ctx context.Context, eventID int64, code string) (*domain.Booking, error)
	Cancel(ctx context.Context, eventID int64) (*domain.Booking, error)
	CloseDetail(eventID int64)
	Snapshot(eventID int64) flow.State
}

// Console is the interactive command loop. It holds no state of its own
// beyond the input reader; everything it shows comes from the services and
// the flow manager.
type Console struct {
	auth    AuthSvc
	events  EventSvc
	profile ProfileSvc
	flow    BookingFlow

	in    *bufio.Scanner
	lines chan string
	out   io.Writer
}

func New(auth AuthSvc, events EventSvc, profile ProfileSvc, bookings BookingFlow, in io.Reader, out io.Writer) *Console {
	return &Console{
		auth:    auth,
		events:  events,
		profile: profile,
		flow:    bookings,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const dateFormat = "02 Jan 2006 15:04"

func (c *Console) Run(ctx context.Context) error {
	c.printf("Event-Manager client. Type 'help' for commands.\n")

	// All input goes through one channel so prompts inside a command and the
	// main loop never compete for the scanner.
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		for c.in.Scan() {
			select {
			case c.lines <- c.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		c.printf("> ")

		line, open := c.readLine(ctx)
		if !open {
			c.printf("\n")
			return nil
		}
		if quit := c.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (c *Console) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, open := <-c.lines:
		return line, open
	}
}

func (c *Console) dispatch(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		c.printHelp()
	case "events":
		c.cmdEvents(ctx, strings.Join(args, " "))
	case "show":
		c.cmdShow(ctx, args)
	case "login":
		c.cmdLogin(ctx)
	case "register":
		c.cmdRegister(ctx)
	case "logout":
		c.cmdLogout(ctx)
	case "book":
		c.cmdBook(ctx, args)
	case "manage":
		c.cmdManage(ctx, args)
	case "cancel":
		c.cmdCancel(ctx, args)
	case "close":
		c.cmdClose(args)
	case "me":
		c.cmdMe(ctx)
	case "quit", "exit":
		return true
	default:
		c.printf("unknown command %q, type 'help'\n", cmd)
	}

	return false
}

func (c *Console) printHelp() {
	c.printf(`commands:
  events [query]       list events, optionally filtered by title/description
  show <event-id>      show one event
  login                log in with email and password
  register             create an account
  logout               log out (clears the local session)
  book <event-id>      book an event (shows the booking code briefly)
  manage <event-id> <code>
                       look up a booking by its code
  cancel <event-id>    cancel the looked-up booking, if cancelable
  close <event-id>     hide the looked-up booking
  me                   show profile and bookings
  quit                 exit
`)
}

func (c *Console) cmdEvents(ctx context.Context, query string) {
	events, err := c.events.Search(ctx, query)
	if err != nil {
		c.printErr(err)
		return
	}

	if len(events) == 0 {
		c.printf("No events found.\n")
		return
	}

	for _, e := range events {
		c.printEvent(e)
	}
}

func (c *Console) cmdShow(ctx context.Context, args []string) {
	id, err := parseEventID(args, 1)
	if err != nil {
		c.printErr(err)
		return
	}

	event, err := c.events.Get(ctx, id)
	if err != nil {
		c.printErr(err)
		return
	}

	c.printEvent(*event)
}

func (c *Console) cmdLogin(ctx context.Context) {
	email := c.prompt(ctx, "Email: ")
	password := c.prompt(ctx, "Password: ")

	if err := c.auth.Login(ctx, email, password); err != nil {
		c.printErr(err)
		return
	}
	c.printf("Logged in.\n")
}

func (c *Console) cmdRegister(ctx context.Context) {
	username := c.prompt(ctx, "Username: ")
	email := c.prompt(ctx, "Email: ")
	password := c.prompt(ctx, "Password: ")

	if err := c.auth.Register(ctx, username, email, password); err != nil {
		c.printErr(err)
		return
	}
	c.printf("Registered. You can now log in.\n")
}

func (c *Console) cmdLogout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		c.printErr(err)
		return
	}
	c.printf("Logged out.\n")
}

func (c *Console) cmdBook(ctx context.Context, args []string) {
	id, err := parseEventID(args, 1)
	if err != nil {
		c.printErr(err)
		return
	}

	if !c.auth.IsAuthenticated() {
		c.printf("Please login to book events.\n")
		return
	}

	if !c.confirm(ctx, "Are you sure you want to book this event?") {
		return
	}

	booking, err := c.flow.Book(ctx, id)
	if err != nil {
		c.printErr(err)
		return
	}

	c.printf("Booked! Your code: %s (write it down, it is the only way to manage the booking)\n", booking.Code)
}

func (c *Console) cmdManage(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.printf("usage: manage <event-id> <code>\n")
		return
	}

	id, err := parseEventID(args[:1], 1)
	if err != nil {
		c.printErr(err)
		return
	}

	booking, err := c.flow.Lookup(ctx, id, args[1])
	if err != nil {
		c.printErr(err)
		return
	}

	c.printBooking(*booking)
}

func (c *Console) cmdCancel(ctx context.Context, args []string) {
	id, err := parseEventID(args, 1)
	if err != nil {
		c.printErr(err)
		return
	}

	if !c.confirm(ctx, "Are you sure you want to cancel this booking?") {
		return
	}

	booking, err := c.flow.Cancel(ctx, id)
	if err != nil {
		c.printErr(err)
		return
	}

	c.printf("Booking %s canceled.\n", booking.Code)
}

func (c *Console) cmdClose(args []string) {
	id, err := parseEventID(args, 1)
	if err != nil {
		c.printErr(err)
		return
	}
	c.flow.CloseDetail(id)
}

func (c *Console) cmdMe(ctx context.Context) {
	user, bookings, err := c.profile.Me(ctx)
	if err != nil {
		c.printErr(err)
		return
	}

	c.printf("Username: %s\nEmail: %s\n", user.Username, user.Email)

	if len(bookings) == 0 {
		c.printf("No bookings yet.\n")
		return
	}

	c.printf("My bookings:\n")
	for _, b := range bookings {
		c.printf("  %s - Code: %s (%s)\n", b.EventTitle, b.Code, b.Status)
	}
}

func (c *Console) printEvent(e domain.Event) {
	c.printf("[%d] %s\n", e.ID, e.Title)
	if e.Description != "" {
		c.printf("    %s\n", e.Description)
	}
	c.printf("    Date: %s - %s\n", e.StartDate.Format(dateFormat), e.EndDate.Format(dateFormat))

	snap := c.flow.Snapshot(e.ID)
	if snap.FreshCode != "" {
		c.printf("    Booked! Code: %s\n", snap.FreshCode)
	}
	if snap.LookupError != "" {
		c.printf("    %s\n", snap.LookupError)
	}
	if snap.Detail != nil {
		c.printBooking(*snap.Detail)
	}
}

func (c *Console) printBooking(b domain.Booking) {
	c.printf("    Code: %s\n    Status: %s\n    Booked On: %s\n",
		b.Code, b.Status, b.CreatedAt.Format(dateFormat))
	if b.IsActive() && !b.CanCancel {
		c.printf("    This booking cannot be canceled.\n")
	}
}

func (c *Console) prompt(ctx context.Context, label string) string {
	c.printf("%s", label)
	line, _ := c.readLine(ctx)
	return strings.TrimSpace(line)
}

func (c *Console) confirm(ctx context.Context, question string) bool {
	answer := strings.ToLower(c.prompt(ctx, question+" [y/N] "))
	return answer == "y" || answer == "yes"
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) printErr(err error) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		c.printf("Please login first.\n")
	case errors.Is(err, domain.ErrNotCancelable):
		c.printf("This booking cannot be canceled.\n")
	case errors.Is(err, domain.ErrNoBookingLoaded):
		c.printf("Look up a booking with 'manage' first.\n")
	default:
		c.printf("Error: %v\n", err)
	}
}

func parseEventID(args []string, want int) (int64, error) {
	if len(args) < want {
		return 0, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid event id %q", domain.ErrValidation, args[0])
	}
	return id, nil
}
