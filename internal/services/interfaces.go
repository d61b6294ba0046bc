package services

import (
	"time"

	"billtracker/internal/models"
)

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(vendor string, category models.BillCategory, date string, amount float64, imagePath string) (*models.Bill, error)
	ListBills() ([]models.Bill, error)
	DeleteBill(id uint) error
}

// InsightsServicer defines the contract for spending aggregation.
type InsightsServicer interface {
	GetInsights(now time.Time) (*Insights, error)
}
