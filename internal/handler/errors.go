package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notegate/backend/internal/model"
	"github.com/notegate/backend/internal/service"
)

// writeError is the single translation point from service errors to HTTP
// responses. Clients only ever see generic bodies; the specific cause
// stays in the server-side log.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "No fields to update"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Note not found"})
	case errors.Is(err, service.ErrMisconfigured):
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Server configuration error"})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal server error"})
	}
}
