// Package console is the interactive terminal front end: login, booking,
// cancellation, catalog queries, travel path and completeness check.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"touring/internal/checks"
	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/utils"
)

// ErrTooManyAttempts is returned by Run after three failed logins.
var ErrTooManyAttempts = errors.New("three failed login attempts")

const maxAttempts = 3

// Accounts is implemented by services.CustomerService.
type Accounts interface {
	Login(id int64) (domain.Session, error)
	SignUp(id int64, name string) (domain.Session, error)
}

// Trips is implemented by services.BookingService.
type Trips interface {
	Book(sess domain.Session, kind models.ReservationKind, resID string) error
	Cancel(sess domain.Session, kind models.ReservationKind, resID string) error
	ListFlights() ([]models.FlightLeg, error)
	ListHotels() ([]models.HotelStay, error)
	ListBuses() ([]models.BusLeg, error)
	TravelPath(sess domain.Session) (models.TravelPath, error)
	CheckCompleteness(sess domain.Session) (checks.ItineraryResult, error)
}

type status int

const (
	statusQuit status = iota
	statusContinue
	statusLogin
)

type Console struct {
	Accounts Accounts
	Trips    Trips

	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer, accounts Accounts, trips Trips) *Console {
	return &Console{Accounts: accounts, Trips: trips, in: bufio.NewScanner(in), out: out}
}

// Run loops between login and the user menu until the user quits or input
// ends. Logging out (0) returns to the login prompt.
func (c *Console) Run() error {
	for {
		sess, err := c.loginView()
		if errors.Is(err, io.EOF) {
			c.goodbye()
			return nil
		}
		if err != nil {
			c.println("Three wrong ids, exiting...")
			return err
		}
		st := statusContinue
		for st == statusContinue {
			st = c.userMenu(sess)
		}
		if st == statusQuit {
			c.goodbye()
			return nil
		}
	}
}

func (c *Console) goodbye() { c.println("------ Goodbye ------") }

func (c *Console) loginView() (domain.Session, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		c.println("------------- TouringBookingSystem -------------")
		c.print("Enter your id (unknown ids will be registered): ")
		line, ok := c.readLine()
		if !ok {
			return domain.Session{}, io.EOF
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || id <= 0 {
			c.println("Please enter a positive number.")
			continue
		}
		sess, err := c.login(id)
		if errors.Is(err, io.EOF) {
			return domain.Session{}, err
		}
		if err == nil {
			return sess, nil
		}
	}
	return domain.Session{}, ErrTooManyAttempts
}

func (c *Console) login(id int64) (domain.Session, error) {
	sess, err := c.Accounts.Login(id)
	if err == nil {
		c.printf("Hello, %s!\n", sess.Name)
		return sess, nil
	}
	if !domain.IsNotFound(err) {
		c.report(err)
		return domain.Session{}, err
	}
	return c.signUp(id)
}

func (c *Console) signUp(id int64) (domain.Session, error) {
	for tries := 0; tries < maxAttempts; tries++ {
		c.printf("Account [%d] does not exist, register it? (y/n) ", id)
		line, ok := c.readLine()
		if !ok {
			return domain.Session{}, io.EOF
		}
		switch strings.ToLower(line) {
		case "y":
			c.print("Enter the account name: ")
			name, ok := c.readLine()
			if !ok {
				return domain.Session{}, io.EOF
			}
			sess, err := c.Accounts.SignUp(id, name)
			if err != nil {
				c.report(err)
				return domain.Session{}, err
			}
			c.printf("Hello, %s!\n", sess.Name)
			return sess, nil
		case "n":
			return domain.Session{}, domain.NotFoundError{Resource: "customer", ID: strconv.FormatInt(id, 10)}
		default:
			c.println("Please answer y or n.")
		}
	}
	c.println("Three wrong answers.")
	return domain.Session{}, domain.ValidationError{Field: "answer", Msg: "expected y or n"}
}

func (c *Console) userMenu(sess domain.Session) status {
	c.println("TouringBookingSystem")
	c.println("1. Book a flight/bus/hotel room")
	c.println("2. Cancel a flight/bus/hotel room")
	c.println("3. Query flights/buses/hotel rooms")
	c.println("4. Show travel path")
	c.println("5. Check route completeness")
	c.println("0. Log out")
	c.print("$> Choose a service: ")
	line, ok := c.readLine()
	if !ok {
		return statusQuit
	}
	switch line {
	case "1":
		c.booking(sess)
	case "2":
		c.cancel(sess)
	case "3":
		c.querying()
	case "4":
		c.travelPath(sess)
	case "5":
		c.completeness(sess)
	case "0":
		return statusLogin
	default:
		return statusQuit
	}
	return statusContinue
}

// kindMenu asks for flight, bus or hotel; ok is false for "back" or any
// other answer.
func (c *Console) kindMenu(title, verb string) (models.ReservationKind, bool) {
	c.println(title)
	c.printf("1. %s flight\n", verb)
	c.printf("2. %s bus\n", verb)
	c.printf("3. %s hotel room\n", verb)
	c.println("4. Back")
	c.print("$> Choose a type: ")
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	switch line {
	case "1":
		return models.KindFlight, true
	case "2":
		return models.KindBus, true
	case "3":
		return models.KindHotel, true
	}
	return 0, false
}

func (c *Console) booking(sess domain.Session) {
	kind, ok := c.kindMenu("Booking", "Book")
	if !ok {
		return
	}
	if err := c.showCatalog(kind, ""); err != nil {
		c.report(err)
		return
	}
	c.print("$> Enter the number to book: ")
	resID, ok := c.readLine()
	if !ok {
		return
	}
	if err := c.Trips.Book(sess, kind, resID); err != nil {
		c.report(err)
		return
	}
	c.println("Success!")
}

func (c *Console) cancel(sess domain.Session) {
	kind, ok := c.kindMenu("Cancel booking", "Cancel")
	if !ok {
		return
	}
	path, err := c.Trips.TravelPath(sess)
	if err != nil {
		c.report(err)
		return
	}
	var booked int
	switch kind {
	case models.KindFlight:
		booked = len(path.Flights)
		c.flightTable(path.Flights, noBookings)
	case models.KindBus:
		booked = len(path.Buses)
		c.busTable(path.Buses, noBookings)
	case models.KindHotel:
		booked = len(path.Hotels)
		c.hotelTable(path.Hotels, noBookings)
	}
	if booked == 0 {
		return
	}
	c.print("Enter the flight/bus/hotel number to cancel: ")
	resID, ok := c.readLine()
	if !ok {
		return
	}
	if err := c.Trips.Cancel(sess, kind, resID); err != nil {
		c.report(err)
		return
	}
	c.println("Success!")
}

func (c *Console) querying() {
	kind, ok := c.kindMenu("Query", "Query")
	if !ok {
		return
	}
	if err := c.showCatalog(kind, noOffers); err != nil {
		c.report(err)
	}
}

func (c *Console) showCatalog(kind models.ReservationKind, empty string) error {
	switch kind {
	case models.KindFlight:
		rows, err := c.Trips.ListFlights()
		if err != nil {
			return err
		}
		c.flightTable(rows, empty)
	case models.KindBus:
		rows, err := c.Trips.ListBuses()
		if err != nil {
			return err
		}
		c.busTable(rows, empty)
	case models.KindHotel:
		rows, err := c.Trips.ListHotels()
		if err != nil {
			return err
		}
		c.hotelTable(rows, empty)
	}
	return nil
}

func (c *Console) travelPath(sess domain.Session) {
	path, err := c.Trips.TravelPath(sess)
	if err != nil {
		c.report(err)
		return
	}
	c.println("Flight bookings:")
	c.flightTable(path.Flights, noBookings)
	c.println("Bus bookings:")
	c.busTable(path.Buses, noBookings)
	c.println("Hotel bookings:")
	c.hotelTable(path.Hotels, noBookings)
}

func (c *Console) completeness(sess domain.Session) {
	res, err := c.Trips.CheckCompleteness(sess)
	if err != nil {
		c.report(err)
		return
	}
	if res.Complete {
		c.println("--- Route is complete ---")
		return
	}
	c.println("Route is incomplete, check:")
	c.println("1. Do the flights cover every city with a booked hotel or bus?")
	c.println("2. Can all booked flights be taken one after another in a single trip?")
	if res.Location != "" {
		c.printf("<!> %s is not on any booked flight.\n", res.Location)
	}
}

// report prints a user-facing message for err. Unexpected errors are logged
// and shown generically.
func (c *Console) report(err error) {
	switch {
	case domain.IsValidation(err):
		c.printf("<!> Invalid input: %v\n", err)
	case domain.IsNotFound(err), domain.IsConflict(err):
		c.printf("<!> %v\n", err)
	default:
		utils.LogEvent("", "console", "error", err.Error())
		c.println("<!> Something went wrong, please try again.")
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) print(s string)                 { fmt.Fprint(c.out, s) }
func (c *Console) println(s string)               { fmt.Fprintln(c.out, s) }
func (c *Console) printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }
