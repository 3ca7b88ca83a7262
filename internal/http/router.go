package api

import (
	"log"
	stdhttp "net/http"

	intconfig "touring/internal/config"
	h "touring/internal/http/handlers"
	"touring/internal/http/middleware"
	"touring/internal/metrics"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, m *metrics.Registry) *gin.Engine {
	h.SetMetrics(m)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", h.Metrics)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)
		api.GET("/consistency", h.GetConsistency)

		api.GET("/catalog/:kind", h.GetCatalog)

		customers := api.Group("/customers")
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("/:id/reservations", h.CreateReservation)
		customers.DELETE("/:id/reservations/:kind/:res_id", h.DeleteReservation)
		customers.GET("/:id/travel-path", h.GetTravelPath)
		customers.GET("/:id/completeness", h.GetCompleteness)
		customers.GET("/:id/itinerary.pdf", h.GetItineraryPDF)
	}

	h.SetRouter(r)
	return r
}
