package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
)

// CategoryTotal is a per-category amount sum.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is a per-month amount sum, month in YYYY-MM form.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// CategoryBreakdown is a per-category sum with a record count.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// MonthBreakdown is the per-month detail row of the breakdown table.
type MonthBreakdown struct {
	Month      string              `json:"month"`
	Total      float64             `json:"total"`
	Categories []CategoryBreakdown `json:"categories"`
}

// Insights is the aggregate object consumed by the dashboard charts.
type Insights struct {
	SpendingByCategory     []CategoryTotal  `json:"spending_by_category"`
	SpendingByCategoryYear []CategoryTotal  `json:"spending_by_category_year"`
	MonthlyTrend           []MonthTotal     `json:"monthly_trend"`
	TopCategoryThisMonth   string           `json:"top_category_this_month"`
	TotalThisMonth         float64          `json:"total_this_month"`
	TotalThisYear          float64          `json:"total_this_year"`
	MonthlyBreakdown       []MonthBreakdown `json:"monthly_breakdown"`
}

// insightsService computes spending aggregates from stored bills.
//
// Dates are persisted as ISO YYYY-MM-DD text, so calendar bucketing is plain
// substr() over the bill's own date and behaves identically on postgres and
// the sqlite test database.
type insightsService struct {
	db *gorm.DB
}

// NewInsightsService creates a new InsightsServicer.
func NewInsightsService(db *gorm.DB) InsightsServicer {
	return &insightsService{db: db}
}

// GetInsights computes all aggregates as of the given time.
func (s *insightsService) GetInsights(now time.Time) (*Insights, error) {
	currentMonth := now.Format("2006-01")
	currentYear := now.Format("2006")
	trendCutoff := now.AddDate(-1, 0, 0).Format("2006-01-02")

	byCategory, err := s.categoryTotals("substr(date,1,7) = ?", currentMonth)
	if err != nil {
		return nil, err
	}
	byCategoryYear, err := s.categoryTotals("substr(date,1,4) = ?", currentYear)
	if err != nil {
		return nil, err
	}

	var trend []MonthTotal
	err = s.db.Model(&models.Bill{}).
		Select("substr(date,1,7) AS month, SUM(amount) AS total").
		Where("date >= ?", trendCutoff).
		Group("substr(date,1,7)").
		Order("month ASC").
		Scan(&trend).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if trend == nil {
		trend = []MonthTotal{}
	}

	totalThisMonth, err := s.sumWhere("substr(date,1,7) = ?", currentMonth)
	if err != nil {
		return nil, err
	}
	totalThisYear, err := s.sumWhere("substr(date,1,4) = ?", currentYear)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.monthlyBreakdown(trendCutoff)
	if err != nil {
		return nil, err
	}

	// Top category: this month's leader, falling back to the year's leader
	// when the current month has no data. Ties keep the first row returned.
	topCategory := ""
	if len(byCategory) > 0 {
		topCategory = byCategory[0].Category
	} else if len(byCategoryYear) > 0 {
		topCategory = byCategoryYear[0].Category
	}

	return &Insights{
		SpendingByCategory:     byCategory,
		SpendingByCategoryYear: byCategoryYear,
		MonthlyTrend:           trend,
		TopCategoryThisMonth:   topCategory,
		TotalThisMonth:         totalThisMonth,
		TotalThisYear:          totalThisYear,
		MonthlyBreakdown:       breakdown,
	}, nil
}

func (s *insightsService) categoryTotals(cond string, arg string) ([]CategoryTotal, error) {
	var totals []CategoryTotal
	err := s.db.Model(&models.Bill{}).
		Select("category, SUM(amount) AS total").
		Where(cond, arg).
		Group("category").
		Order("total DESC").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

func (s *insightsService) sumWhere(cond string, arg string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Bill{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(cond, arg).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

func (s *insightsService) monthlyBreakdown(cutoff string) ([]MonthBreakdown, error) {
	var rows []struct {
		Month    string
		Category string
		Total    float64
		Count    int64
	}
	err := s.db.Model(&models.Bill{}).
		Select("substr(date,1,7) AS month, category, SUM(amount) AS total, COUNT(*) AS count").
		Where("date >= ?", cutoff).
		Group("substr(date,1,7), category").
		Order("month DESC, total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Fold category rows into per-month entries; rows arrive most-recent
	// month first, so insertion order is already the display order.
	breakdown := []MonthBreakdown{}
	index := map[string]int{}
	for _, row := range rows {
		i, seen := index[row.Month]
		if !seen {
			breakdown = append(breakdown, MonthBreakdown{Month: row.Month, Categories: []CategoryBreakdown{}})
			i = len(breakdown) - 1
			index[row.Month] = i
		}
		breakdown[i].Total += row.Total
		breakdown[i].Categories = append(breakdown[i].Categories, CategoryBreakdown{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}
	return breakdown, nil
}
