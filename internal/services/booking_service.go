package services

import (
	"database/sql"
	"fmt"
	"strings"

	"touring/internal/checks"
	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/metrics"
	"touring/internal/repositories"
	"touring/internal/utils"
)

type BookingService struct {
	Customers    CustomerStore
	Catalog      CatalogStore
	Reservations ReservationStore
	Metrics      *metrics.Registry
	RequestID    string
}

// NewBookingService wires the MySQL repositories around db.
func NewBookingService(db *sql.DB, m *metrics.Registry) BookingService {
	return BookingService{
		Customers:    repositories.CustomerRepository{DB: db},
		Catalog:      repositories.CatalogRepository{DB: db},
		Reservations: repositories.ReservationRepository{DB: db},
		Metrics:      m,
	}
}

// WithRequestID returns a copy that tags its log lines with id.
func (s BookingService) WithRequestID(id string) BookingService {
	s.RequestID = id
	return s
}

func (s BookingService) Book(sess domain.Session, kind models.ReservationKind, resID string) error {
	resID, err := s.validate(sess, kind, resID)
	if err != nil {
		return err
	}
	if err := s.Reservations.Book(sess.CustomerID, kind, resID); err != nil {
		return err
	}
	s.count(kind, "book")
	utils.LogEvent(s.RequestID, "booking", "book", fmt.Sprintf("customer=%d kind=%s res_id=%s", sess.CustomerID, kind, resID))
	return nil
}

func (s BookingService) Cancel(sess domain.Session, kind models.ReservationKind, resID string) error {
	resID, err := s.validate(sess, kind, resID)
	if err != nil {
		return err
	}
	if err := s.Reservations.Cancel(sess.CustomerID, kind, resID); err != nil {
		return err
	}
	s.count(kind, "cancel")
	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("customer=%d kind=%s res_id=%s", sess.CustomerID, kind, resID))
	return nil
}

func (s BookingService) ListFlights() ([]models.FlightLeg, error) { return s.Catalog.ListFlights() }

func (s BookingService) ListHotels() ([]models.HotelStay, error) { return s.Catalog.ListHotels() }

func (s BookingService) ListBuses() ([]models.BusLeg, error) { return s.Catalog.ListBuses() }

// TravelPath collects the customer's booked flights, hotels and buses.
func (s BookingService) TravelPath(sess domain.Session) (models.TravelPath, error) {
	if err := s.requireCustomer(sess); err != nil {
		return models.TravelPath{}, err
	}
	var (
		path models.TravelPath
		err  error
	)
	if path.Flights, err = s.Reservations.FlightsByCustomer(sess.CustomerID); err != nil {
		return models.TravelPath{}, domain.InternalError{Msg: "load booked flights", Err: err}
	}
	if path.Hotels, err = s.Reservations.HotelsByCustomer(sess.CustomerID); err != nil {
		return models.TravelPath{}, domain.InternalError{Msg: "load booked hotels", Err: err}
	}
	if path.Buses, err = s.Reservations.BusesByCustomer(sess.CustomerID); err != nil {
		return models.TravelPath{}, domain.InternalError{Msg: "load booked buses", Err: err}
	}
	return path, nil
}

// CheckCompleteness runs the itinerary check over the customer's bookings.
// An incomplete itinerary is a normal result, not an error.
func (s BookingService) CheckCompleteness(sess domain.Session) (checks.ItineraryResult, error) {
	path, err := s.TravelPath(sess)
	if err != nil {
		return checks.ItineraryResult{}, err
	}
	res := checks.ExplainItinerary(path.Flights, path.Hotels, path.Buses)
	if s.Metrics != nil {
		s.Metrics.ItineraryChecks.WithLabelValues(metrics.Result(res.Complete)).Inc()
	}
	utils.LogEvent(s.RequestID, "itinerary", "check", fmt.Sprintf("customer=%d complete=%t reason=%s", sess.CustomerID, res.Complete, res.Reason))
	return res, nil
}

func (s BookingService) validate(sess domain.Session, kind models.ReservationKind, resID string) (string, error) {
	if !kind.Valid() {
		return "", domain.ValidationError{Field: "kind", Msg: "must be flight, hotel or bus"}
	}
	resID = strings.TrimSpace(resID)
	if resID == "" {
		return "", domain.ValidationError{Field: "res_id", Msg: "empty"}
	}
	return resID, s.requireCustomer(sess)
}

func (s BookingService) requireCustomer(sess domain.Session) error {
	if !sess.Valid() {
		return domain.ValidationError{Field: "customer_id", Msg: "not logged in"}
	}
	ok, err := s.Customers.Exists(sess.CustomerID)
	if err != nil {
		return domain.InternalError{Msg: "check customer", Err: err}
	}
	if !ok {
		return domain.NotFoundError{Resource: "customer", ID: fmt.Sprint(sess.CustomerID)}
	}
	return nil
}

func (s BookingService) count(kind models.ReservationKind, action string) {
	if s.Metrics != nil {
		s.Metrics.Bookings.WithLabelValues(kind.String(), action).Inc()
	}
}
