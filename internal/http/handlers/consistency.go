package handlers

import (
	"net/http"

	intconfig "touring/internal/config"
	"touring/internal/services"

	"github.com/gin-gonic/gin"
)

// GetConsistency runs the inventory check on demand. With ?mode=audit every
// discrepancy is listed instead of stopping at the first.
func GetConsistency(c *gin.Context) {
	svc := services.NewConsistencyService(intconfig.DB, metricsRegistry())

	if c.Query("mode") == "audit" {
		found, err := svc.Audit()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"consistent": len(found) == 0, "discrepancies": found})
		return
	}

	ok, err := svc.Run()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consistent": ok})
}
