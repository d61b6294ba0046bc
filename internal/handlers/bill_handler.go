package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/models"
	"billtracker/internal/services"
)

// BillHandler handles bill persistence requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// CreateBillRequest represents the request payload for saving a reviewed bill.
type CreateBillRequest struct {
	Vendor    string  `json:"vendor" binding:"required"`
	Category  string  `json:"category" binding:"required,bill_category"`
	Date      string  `json:"date" binding:"required,iso_date"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	ImagePath string  `json:"image_path"`
}

// CreateBill handles the save step after the user confirms the review form.
// @Summary     Create a bill
// @Description Persist a reviewed bill record
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(req.Vendor, models.BillCategory(req.Category), req.Date, req.Amount, req.ImagePath)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// ListBills handles the retrieval of all stored bills.
// @Summary     List bills
// @Description Get all bills, most recent date first
// @Tags        bills
// @Produce     json
// @Success     200 {array} models.Bill "Bills"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.ListBills()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, bills)
}

// DeleteBill handles the permanent deletion of a bill.
// @Summary     Delete bill
// @Description Permanently delete a bill by ID
// @Tags        bills
// @Produce     json
// @Param       id path int true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}
