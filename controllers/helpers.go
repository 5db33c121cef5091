package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a domain error to its HTTP status. notFoundMsg
// names the resource for the 404 body; storage failures are logged and never
// leaked verbatim.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *services.ValidationError
	var cfErr *services.ConflictError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
	case errors.As(err, &cfErr):
		utils.JSONError(c, http.StatusConflict, cfErr.Message)
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, notFoundMsg)
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}
