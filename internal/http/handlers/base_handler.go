// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps pipeline failures onto HTTP statuses. Missing input is
// the caller's fault; anything else is a generation failure whose upstream
// message is surfaced as-is (no partial itinerary exists at that point).
func writePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingAPIKey):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusBadGateway, err.Error())
	}
}
