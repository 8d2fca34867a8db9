// README: Trip planning handlers for itinerary generation and PDF export.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/pdf"
	"tripplanner/internal/service"
	"tripplanner/internal/trip"
)

// planService matches *service.Planner and allows stubbing in tests.
type planService interface {
	Plan(ctx context.Context, req trip.Request, creds service.Credentials) (service.Result, error)
}

type PlanHandler struct {
	planner  planService
	defaults service.Credentials
}

// NewPlanHandler creates handlers backed by the given planner. defaults are
// the server-configured API keys; request-supplied keys take precedence.
func NewPlanHandler(planner planService, defaults service.Credentials) *PlanHandler {
	return &PlanHandler{planner: planner, defaults: defaults}
}

type planTripReq struct {
	Destination   string   `json:"destination" binding:"required"`
	Days          int      `json:"days" binding:"required,min=1,max=30"`
	Budget        string   `json:"budget" binding:"required,oneof=Low Medium High"`
	Interests     []string `json:"interests"`
	GeminiAPIKey  string   `json:"gemini_api_key"`
	AmadeusAPIKey string   `json:"amadeus_api_key"`
}

type planTripResp struct {
	Itinerary     string   `json:"itinerary"`
	Weather       string   `json:"weather"`
	FlightOptions []string `json:"flight_options"`
}

// Plan handles POST /api/trips/plan.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req planTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	creds := service.Credentials{
		GeminiKey:  firstNonEmpty(req.GeminiAPIKey, h.defaults.GeminiKey),
		AmadeusKey: firstNonEmpty(req.AmadeusAPIKey, h.defaults.AmadeusKey),
	}

	// A model call can run long; the interaction surface blocks until it
	// returns or errors (no cancellation once started, beyond this ceiling).
	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	result, err := h.planner.Plan(ctx, trip.Request{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      trip.Budget(req.Budget),
		Interests:   req.Interests,
	}, creds)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, planTripResp{
		Itinerary:     result.Itinerary,
		Weather:       result.WeatherSummary,
		FlightOptions: result.FlightOptions,
	})
}

type exportPDFReq struct {
	Destination string `json:"destination" binding:"required"`
	Itinerary   string `json:"itinerary" binding:"required"`
}

// ExportPDF handles POST /api/trips/pdf. The itinerary text is supplied by the
// caller rather than read from server state: runs leave nothing behind.
func (h *PlanHandler) ExportPDF(c *gin.Context) {
	var req exportPDFReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	data, err := pdf.Render(req.Itinerary)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "pdf rendering failed")
		return
	}

	filename := fmt.Sprintf("%s_itinerary.pdf", req.Destination)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
