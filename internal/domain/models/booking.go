package models

import (
	"fmt"
	"strings"
)

// ReservationKind mirrors reservations.res_type.
type ReservationKind uint8

const (
	KindFlight ReservationKind = 1
	KindHotel  ReservationKind = 2
	KindBus    ReservationKind = 3
)

// Kinds lists every bookable kind in res_type order.
var Kinds = []ReservationKind{KindFlight, KindHotel, KindBus}

func (k ReservationKind) String() string {
	switch k {
	case KindFlight:
		return "flight"
	case KindHotel:
		return "hotel"
	case KindBus:
		return "bus"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the known res_type values.
func (k ReservationKind) Valid() bool {
	return k == KindFlight || k == KindHotel || k == KindBus
}

func (k ReservationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind accepts "flight(s)", "hotel(s)", "bus(es)" or the numeric res_type.
func ParseKind(s string) (ReservationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "flight", "flights":
		return KindFlight, nil
	case "2", "hotel", "hotels":
		return KindHotel, nil
	case "3", "bus", "buses":
		return KindBus, nil
	}
	return 0, fmt.Errorf("unknown reservation kind %q", s)
}

// Reservation is one row of the reservations table.
type Reservation struct {
	ID         int64
	CustomerID int64
	Kind       ReservationKind
	ResID      string
}

// Customer is a registered traveller.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TravelPath is everything one customer has booked.
type TravelPath struct {
	Flights []FlightLeg `json:"flights"`
	Hotels  []HotelStay `json:"hotels"`
	Buses   []BusLeg    `json:"buses"`
}
