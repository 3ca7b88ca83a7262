package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg               *prometheus.Registry
	ConsistencyChecks *prometheus.CounterVec
	ItineraryChecks   *prometheus.CounterVec
	Bookings          *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	consistency := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "touring_consistency_checks_total",
		Help: "Database consistency checks by result.",
	}, []string{"result"})
	itinerary := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "touring_itinerary_checks_total",
		Help: "Itinerary completeness checks by result.",
	}, []string{"result"})
	bookings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "touring_bookings_total",
		Help: "Successful bookings and cancellations by kind.",
	}, []string{"kind", "action"})

	r.MustRegister(consistency, itinerary, bookings)
	return &Registry{
		reg:               r,
		ConsistencyChecks: consistency,
		ItineraryChecks:   itinerary,
		Bookings:          bookings,
	}
}

// Result turns a check verdict into a label value.
func Result(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
