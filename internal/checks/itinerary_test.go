package checks

import (
	"testing"

	"touring/internal/domain/models"
)

func leg(from, to string) models.FlightLeg {
	return models.FlightLeg{FlightNum: from + to, FromCity: from, ArriveCity: to}
}

func hotelAt(city string) models.HotelStay { return models.HotelStay{HotelNum: "H-" + city, Location: city} }

func busAt(city string) models.BusLeg { return models.BusLeg{BusNum: "B-" + city, Location: city} }

func TestCheckItinerary(t *testing.T) {
	tests := []struct {
		name    string
		flights []models.FlightLeg
		hotels  []models.HotelStay
		buses   []models.BusLeg
		want    bool
		reason  Reason
	}{
		{
			name: "empty itinerary",
			want: true, reason: ReasonComplete,
		},
		{
			name:   "hotel without flights",
			hotels: []models.HotelStay{hotelAt("A")},
			want:   false, reason: ReasonStrayHotel,
		},
		{
			name:  "bus without flights",
			buses: []models.BusLeg{busAt("A")},
			want:  false, reason: ReasonStrayBus,
		},
		{
			name:    "round trip with hotel",
			flights: []models.FlightLeg{leg("A", "B"), leg("B", "A")},
			hotels:  []models.HotelStay{hotelAt("A")},
			want:    true, reason: ReasonComplete,
		},
		{
			name:    "hotel outside route",
			flights: []models.FlightLeg{leg("A", "B")},
			hotels:  []models.HotelStay{hotelAt("C")},
			want:    false, reason: ReasonStrayHotel,
		},
		{
			name:    "open path",
			flights: []models.FlightLeg{leg("A", "B"), leg("B", "C")},
			hotels:  []models.HotelStay{hotelAt("B")},
			buses:   []models.BusLeg{busAt("C"), busAt("A")},
			want:    true, reason: ReasonComplete,
		},
		{
			name:    "two separate edges",
			flights: []models.FlightLeg{leg("A", "B"), leg("C", "D")},
			want:    false, reason: ReasonUnbalanced,
		},
		{
			name:    "disconnected circuits still pass",
			flights: []models.FlightLeg{leg("A", "B"), leg("B", "A"), leg("C", "D"), leg("D", "C")},
			want:    true, reason: ReasonComplete,
		},
		{
			name:    "duplicate legs counted separately",
			flights: []models.FlightLeg{leg("A", "B"), leg("A", "B")},
			want:    true, reason: ReasonComplete,
		},
		{
			name:    "duplicate legs plus return",
			flights: []models.FlightLeg{leg("A", "B"), leg("A", "B"), leg("B", "A")},
			want:    true, reason: ReasonComplete,
		},
		{
			name:    "only a start city",
			flights: []models.FlightLeg{leg("A", "B"), leg("A", "B"), leg("B", "C")},
			want:    false, reason: ReasonUnbalanced,
		},
		{
			name:    "bus outside route",
			flights: []models.FlightLeg{leg("A", "B")},
			buses:   []models.BusLeg{busAt("Z")},
			want:    false, reason: ReasonStrayBus,
		},
		{
			name:    "self loop",
			flights: []models.FlightLeg{leg("A", "A")},
			hotels:  []models.HotelStay{hotelAt("A")},
			want:    true, reason: ReasonComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckItinerary(tt.flights, tt.hotels, tt.buses); got != tt.want {
				t.Fatalf("CheckItinerary = %v, want %v", got, tt.want)
			}
			res := ExplainItinerary(tt.flights, tt.hotels, tt.buses)
			if res.Complete != tt.want || res.Reason != tt.reason {
				t.Fatalf("ExplainItinerary = %+v, want complete=%v reason=%s", res, tt.want, tt.reason)
			}
		})
	}
}

func TestExplainItineraryReportsLocation(t *testing.T) {
	res := ExplainItinerary([]models.FlightLeg{leg("A", "B")}, []models.HotelStay{hotelAt("A"), hotelAt("Q")}, nil)
	if res.Location != "Q" {
		t.Fatalf("expected offending location Q, got %q", res.Location)
	}
}

func TestCheckItineraryIdempotent(t *testing.T) {
	flights := []models.FlightLeg{leg("A", "B"), leg("B", "C"), leg("C", "A")}
	hotels := []models.HotelStay{hotelAt("C")}
	first := CheckItinerary(flights, hotels, nil)
	for i := 0; i < 10; i++ {
		if CheckItinerary(flights, hotels, nil) != first {
			t.Fatalf("run %d disagreed with first run", i)
		}
	}
	if flights[0].FromCity != "A" || len(flights) != 3 {
		t.Fatalf("input was mutated")
	}
}
