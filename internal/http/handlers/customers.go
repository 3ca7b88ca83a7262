package handlers

import (
	"net/http"

	intconfig "touring/internal/config"
	"touring/internal/services"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCustomer registers a new customer.
func CreateCustomer(c *gin.Context) {
	var req signUpRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := services.NewCustomerService(intconfig.DB).SignUp(req.ID, req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sess.CustomerID, "name": sess.Name})
}

func GetCustomer(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	sess, err := services.NewCustomerService(intconfig.DB).Login(sess.CustomerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sess.CustomerID, "name": sess.Name})
}
