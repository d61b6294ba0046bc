package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
)

// billService handles bill-related business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill validates and persists a confirmed bill record.
func (s *billService) CreateBill(vendor string, category models.BillCategory, date string, amount float64, imagePath string) (*models.Bill, error) {
	if vendor == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "vendor is required")
	}
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be a valid YYYY-MM-DD date")
	}

	bill := &models.Bill{
		Vendor:    vendor,
		Category:  category,
		Date:      date,
		Amount:    amount,
		ImagePath: imagePath,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return bill, nil
}

// ListBills returns all bills, most recent date first.
func (s *billService) ListBills() ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.Order("date DESC, id DESC").Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}

// DeleteBill permanently removes a bill. Deleting an unknown id is an error,
// not a silent success.
func (s *billService) DeleteBill(id uint) error {
	result := s.db.Delete(&models.Bill{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBillNotFound
	}
	return nil
}
