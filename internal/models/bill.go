package models

import "strings"

// BillCategory represents the spending category of a bill.
type BillCategory string

const (
	BillCategoryFood          BillCategory = "food"
	BillCategoryTravel        BillCategory = "travel"
	BillCategoryUtilities     BillCategory = "utilities"
	BillCategoryShopping      BillCategory = "shopping"
	BillCategoryHealthcare    BillCategory = "healthcare"
	BillCategoryEntertainment BillCategory = "entertainment"
	BillCategoryOther         BillCategory = "other"
)

// AllBillCategories lists every valid category, in display order.
var AllBillCategories = []BillCategory{
	BillCategoryFood,
	BillCategoryTravel,
	BillCategoryUtilities,
	BillCategoryShopping,
	BillCategoryHealthcare,
	BillCategoryEntertainment,
	BillCategoryOther,
}

// Valid reports whether the category is part of the fixed enumeration.
func (c BillCategory) Valid() bool {
	for _, known := range AllBillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps a free-form category string onto the enumeration.
// Anything unknown collapses to "other".
func NormalizeCategory(s string) BillCategory {
	c := BillCategory(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return BillCategoryOther
}

// Bill represents a confirmed bill record. Bills are created once after the
// user reviews the extraction, never updated in place, and hard-deleted by id.
// Date is stored as ISO YYYY-MM-DD text so month/year grouping always uses
// the bill's own date rather than insert time.
type Bill struct {
	Base
	Vendor    string       `gorm:"not null" json:"vendor"`
	Category  BillCategory `gorm:"not null;default:other" json:"category"`
	Date      string       `gorm:"type:varchar(10);not null;index" json:"date"`
	Amount    float64      `gorm:"not null" json:"amount"`
	ImagePath string       `json:"image_path"`
}
