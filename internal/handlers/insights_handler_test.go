package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/services"
)

// --- mock insights service ---

type mockInsightsService struct {
	getInsightsFn func(now time.Time) (*services.Insights, error)
}

func (m *mockInsightsService) GetInsights(now time.Time) (*services.Insights, error) {
	if m.getInsightsFn != nil {
		return m.getInsightsFn(now)
	}
	return &services.Insights{}, nil
}

var _ services.InsightsServicer = (*mockInsightsService)(nil)

func setupInsightsRouter(handler *InsightsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/insights", handler.GetInsights)
	return r
}

func TestInsightsHandler_GetInsights(t *testing.T) {
	t.Run("returns aggregate object", func(t *testing.T) {
		svc := &mockInsightsService{
			getInsightsFn: func(now time.Time) (*services.Insights, error) {
				return &services.Insights{
					SpendingByCategory:   []services.CategoryTotal{{Category: "food", Total: 300}},
					TopCategoryThisMonth: "food",
					TotalThisMonth:       400,
					TotalThisYear:        540,
					MonthlyTrend:         []services.MonthTotal{{Month: "2024-03", Total: 400}},
				}, nil
			},
		}
		r := setupInsightsRouter(NewInsightsHandler(svc))

		rec := doRequest(r, "GET", "/insights", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["top_category_this_month"] != "food" {
			t.Errorf("expected top category food, got %v", result["top_category_this_month"])
		}
		if result["total_this_month"] != float64(400) {
			t.Errorf("expected total_this_month 400, got %v", result["total_this_month"])
		}
	})

	t.Run("returns 500 on service error", func(t *testing.T) {
		svc := &mockInsightsService{
			getInsightsFn: func(now time.Time) (*services.Insights, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupInsightsRouter(NewInsightsHandler(svc))

		rec := doRequest(r, "GET", "/insights", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}
