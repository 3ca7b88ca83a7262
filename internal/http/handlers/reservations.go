package handlers

import (
	"net/http"

	intconfig "touring/internal/config"
	"touring/internal/domain/models"
	"touring/internal/http/middleware"
	"touring/internal/services"

	"github.com/gin-gonic/gin"
)

type reservationRequest struct {
	Kind  string `json:"kind"`
	ResID string `json:"res_id"`
}

// CreateReservation books one flight seat, hotel room or bus seat.
func CreateReservation(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	var req reservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	kind, err := models.ParseKind(req.Kind)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_kind", err.Error(), nil)
		return
	}
	if err := bookingService(c).Book(sess, kind, req.ResID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer_id": sess.CustomerID, "kind": kind.String(), "res_id": req.ResID})
}

func DeleteReservation(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	kind, err := models.ParseKind(c.Param("kind"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_kind", err.Error(), nil)
		return
	}
	if err := bookingService(c).Cancel(sess, kind, c.Param("res_id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetTravelPath(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	path, err := bookingService(c).TravelPath(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, path)
}

func GetCompleteness(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	res, err := bookingService(c).CheckCompleteness(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complete": res.Complete,
		"reason":   res.Reason,
		"location": res.Location,
		"message":  services.VerdictText(res),
	})
}

// GetItineraryPDF returns the customer's travel path as a PDF (inline).
func GetItineraryPDF(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	sess, err := services.NewCustomerService(intconfig.DB).Login(sess.CustomerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DocsService{
		Booking:   bookingService(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateItinerary(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
