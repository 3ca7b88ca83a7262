// Package checks holds the two pure verifiers run over booking snapshots:
// itinerary completeness for one customer and inventory consistency for the
// whole database.
package checks

import "touring/internal/domain/models"

// Reason explains the outcome of an itinerary check.
type Reason string

const (
	ReasonComplete   Reason = "complete"
	ReasonUnbalanced Reason = "unbalanced_flights"
	ReasonStrayHotel Reason = "hotel_outside_route"
	ReasonStrayBus   Reason = "bus_outside_route"
)

// ItineraryResult is the verdict of ExplainItinerary.
type ItineraryResult struct {
	Complete bool   `json:"complete"`
	Reason   Reason `json:"reason"`
	// Location is the offending hotel or bus city, if any.
	Location string `json:"location,omitempty"`
}

// CheckItinerary reports whether the booked flights, hotels and buses form
// one traversable route.
func CheckItinerary(flights []models.FlightLeg, hotels []models.HotelStay, buses []models.BusLeg) bool {
	return ExplainItinerary(flights, hotels, buses).Complete
}

// ExplainItinerary is CheckItinerary with the reason for the verdict.
//
// Each flight is a directed edge. A city loses a point per departure and
// gains one per arrival; the flights can be chained into a single trip when
// either every city nets to zero or exactly one city nets +1 and one nets -1.
// Only balances of exactly +1 and -1 are counted, and connectivity of the
// graph is not verified. Hotels and buses must sit in a city some flight
// touches.
func ExplainItinerary(flights []models.FlightLeg, hotels []models.HotelStay, buses []models.BusLeg) ItineraryResult {
	balance := cityBalance(flights)

	positive, negative := 0, 0
	for _, b := range balance {
		switch b {
		case 1:
			positive++
		case -1:
			negative++
		}
	}
	if !(positive == 0 && negative == 0) && !(positive == 1 && negative == 1) {
		return ItineraryResult{Reason: ReasonUnbalanced}
	}

	for _, h := range hotels {
		if _, ok := balance[h.Location]; !ok {
			return ItineraryResult{Reason: ReasonStrayHotel, Location: h.Location}
		}
	}
	for _, b := range buses {
		if _, ok := balance[b.Location]; !ok {
			return ItineraryResult{Reason: ReasonStrayBus, Location: b.Location}
		}
	}
	return ItineraryResult{Complete: true, Reason: ReasonComplete}
}

// cityBalance builds the degree map; its key set is the set of visited cities.
func cityBalance(flights []models.FlightLeg) map[string]int {
	balance := make(map[string]int, len(flights)*2)
	for _, f := range flights {
		balance[f.FromCity]--
		balance[f.ArriveCity]++
	}
	return balance
}
