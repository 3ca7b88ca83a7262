package handlers

import (
	"net/http"
	"sync"

	intconfig "touring/internal/config"
	"touring/internal/metrics"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine

	metricsMu  sync.Mutex
	metricsReg *metrics.Registry
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// SetMetrics shares the process registry with the handlers.
func SetMetrics(m *metrics.Registry) {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	metricsReg = m
}

func metricsRegistry() *metrics.Registry {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if metricsReg == nil {
		metricsReg = metrics.NewRegistry()
	}
	return metricsReg
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "touring booking system is running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not reachable: " + err.Error()})
		return
	}
	var count int
	err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "customers_in_db": count})
}

func Metrics(c *gin.Context) {
	metricsRegistry().Handler().ServeHTTP(c.Writer, c.Request)
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
