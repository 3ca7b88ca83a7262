package handlers

import (
	"net/http"

	intconfig "touring/internal/config"
	"touring/internal/domain/models"
	"touring/internal/http/middleware"
	"touring/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.NewBookingService(intconfig.DB, metricsRegistry()).WithRequestID(middleware.GetRequestID(c))
}

// GetCatalog lists every flight, hotel or bus on offer.
func GetCatalog(c *gin.Context) {
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_kind", "kind must be flights, hotels or buses", nil)
		return
	}

	svc := bookingService(c)
	var items any
	switch kind {
	case models.KindFlight:
		items, err = svc.ListFlights()
	case models.KindHotel:
		items, err = svc.ListHotels()
	case models.KindBus:
		items, err = svc.ListBuses()
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind.String(), "items": items})
}
