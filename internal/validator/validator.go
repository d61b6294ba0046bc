// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"billtracker/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bill_category", validateBillCategory)
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateBillCategory(fl validator.FieldLevel) bool {
	return models.BillCategory(fl.Field().String()).Valid()
}

// validateISODate accepts calendar dates in YYYY-MM-DD form only; month and
// year bucketing in the insight queries depends on this shape.
func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
