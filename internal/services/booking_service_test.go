package services

import (
	"testing"

	"touring/internal/checks"
	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBookingServiceBookTrimsAndCounts(t *testing.T) {
	res := &fakeReservations{}
	m := metrics.NewRegistry()
	svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: res, Metrics: m}

	if err := svc.Book(domain.Session{CustomerID: 7}, models.KindFlight, "  F1 "); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if len(res.booked) != 1 || res.booked[0] != (bookCall{7, models.KindFlight, "F1"}) {
		t.Fatalf("unexpected book calls: %+v", res.booked)
	}
	if got := testutil.ToFloat64(m.Bookings.WithLabelValues("flight", "book")); got != 1 {
		t.Fatalf("bookings counter = %v", got)
	}
}

func TestBookingServiceRejectsBadInput(t *testing.T) {
	res := &fakeReservations{}
	svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: res}

	tests := []struct {
		name  string
		sess  domain.Session
		kind  models.ReservationKind
		resID string
		check func(error) bool
	}{
		{"bad kind", domain.Session{CustomerID: 7}, models.ReservationKind(9), "F1", domain.IsValidation},
		{"blank id", domain.Session{CustomerID: 7}, models.KindBus, "   ", domain.IsValidation},
		{"no session", domain.Session{}, models.KindHotel, "H1", domain.IsValidation},
		{"unknown customer", domain.Session{CustomerID: 99}, models.KindHotel, "H1", domain.IsNotFound},
	}
	for _, tt := range tests {
		if err := svc.Book(tt.sess, tt.kind, tt.resID); !tt.check(err) {
			t.Errorf("%s: Book err = %v", tt.name, err)
		}
		if err := svc.Cancel(tt.sess, tt.kind, tt.resID); !tt.check(err) {
			t.Errorf("%s: Cancel err = %v", tt.name, err)
		}
	}
	if len(res.booked) != 0 || len(res.cancel) != 0 {
		t.Fatalf("store must not be reached, got book=%v cancel=%v", res.booked, res.cancel)
	}
}

func TestBookingServicePropagatesStoreErrors(t *testing.T) {
	res := &fakeReservations{err: domain.ConflictError{Resource: "flight", Msg: "sold out"}}
	svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: res}

	if err := svc.Book(domain.Session{CustomerID: 7}, models.KindFlight, "F1"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestBookingServiceCancel(t *testing.T) {
	res := &fakeReservations{}
	m := metrics.NewRegistry()
	svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: res, Metrics: m}

	if err := svc.Cancel(domain.Session{CustomerID: 7}, models.KindBus, "B1"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if len(res.cancel) != 1 || res.cancel[0].kind != models.KindBus {
		t.Fatalf("unexpected cancel calls: %+v", res.cancel)
	}
	if got := testutil.ToFloat64(m.Bookings.WithLabelValues("bus", "cancel")); got != 1 {
		t.Fatalf("cancel counter = %v", got)
	}
}

func TestBookingServiceCheckCompleteness(t *testing.T) {
	tests := []struct {
		name   string
		path   models.TravelPath
		reason checks.Reason
	}{
		{
			name: "round trip",
			path: models.TravelPath{
				Flights: []models.FlightLeg{{FlightNum: "F1", FromCity: "A", ArriveCity: "B"}, {FlightNum: "F2", FromCity: "B", ArriveCity: "A"}},
				Hotels:  []models.HotelStay{{HotelNum: "H1", Location: "B"}},
			},
			reason: checks.ReasonComplete,
		},
		{
			name: "disjoint legs",
			path: models.TravelPath{
				Flights: []models.FlightLeg{{FlightNum: "F1", FromCity: "A", ArriveCity: "B"}, {FlightNum: "F2", FromCity: "C", ArriveCity: "D"}},
			},
			reason: checks.ReasonUnbalanced,
		},
		{
			name: "stray bus",
			path: models.TravelPath{
				Flights: []models.FlightLeg{{FlightNum: "F1", FromCity: "A", ArriveCity: "B"}},
				Buses:   []models.BusLeg{{BusNum: "B1", Location: "Z"}},
			},
			reason: checks.ReasonStrayBus,
		},
		{name: "empty", reason: checks.ReasonComplete},
	}
	for _, tt := range tests {
		m := metrics.NewRegistry()
		svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: &fakeReservations{path: tt.path}, Metrics: m}
		res, err := svc.CheckCompleteness(domain.Session{CustomerID: 7})
		if err != nil {
			t.Fatalf("%s: CheckCompleteness error: %v", tt.name, err)
		}
		if res.Reason != tt.reason {
			t.Errorf("%s: reason = %s; want %s", tt.name, res.Reason, tt.reason)
		}
		if got := testutil.ToFloat64(m.ItineraryChecks.WithLabelValues(metrics.Result(res.Complete))); got != 1 {
			t.Errorf("%s: itinerary counter = %v", tt.name, got)
		}
	}
}

func TestBookingServiceTravelPathStoreFailure(t *testing.T) {
	svc := BookingService{Customers: alice(), Catalog: &fakeCatalog{}, Reservations: &fakeReservations{err: errStore}}
	if _, err := svc.TravelPath(domain.Session{CustomerID: 7}); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
