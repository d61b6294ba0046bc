package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"billtracker/internal/services"
)

// InsightsHandler handles spending-insight requests.
type InsightsHandler struct {
	insightsService services.InsightsServicer
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService services.InsightsServicer) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights returns the spending aggregates for the dashboard.
// @Summary     Get spending insights
// @Description Monthly/yearly totals, category breakdowns, and the 12-month trend as of today
// @Tags        insights
// @Produce     json
// @Success     200 {object} services.Insights "Insights"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightsService.GetInsights(time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
