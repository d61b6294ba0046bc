package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"billtracker/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBill creates a bill with the given category, date, and amount.
func CreateTestBill(t *testing.T, db *gorm.DB, category models.BillCategory, date string, amount float64) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		Vendor:    fmt.Sprintf("Test Vendor %d", nextID()),
		Category:  category,
		Date:      date,
		Amount:    amount,
		ImagePath: fmt.Sprintf("/uploads/test-%d.jpg", nextID()),
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}
