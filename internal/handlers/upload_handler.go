package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billtracker/internal/errors"
	"billtracker/internal/extraction"
	"billtracker/internal/logger"
	"billtracker/internal/models"
	"billtracker/internal/uploads"
)

// UploadHandler handles bill image uploads and drives the extraction step.
type UploadHandler struct {
	extractor extraction.Extractor
	store     *uploads.Store
	timeout   time.Duration
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(extractor extraction.Extractor, store *uploads.Store, timeout time.Duration) *UploadHandler {
	return &UploadHandler{extractor: extractor, store: store, timeout: timeout}
}

// UploadResponse represents the extraction result returned for review.
// Nothing is persisted yet; the client must POST /bills to save.
type UploadResponse struct {
	ImagePath         string   `json:"image_path"`
	VendorName        string   `json:"vendor_name"`
	Category          string   `json:"category"`
	Date              string   `json:"date"`
	TotalAmount       *float64 `json:"total_amount"`
	ExtractionSuccess bool     `json:"extraction_success"`
	Error             string   `json:"error,omitempty"`
}

// Upload stores a bill image and runs extraction on it.
// @Summary     Upload a bill image
// @Description Store the image and extract bill fields for review. Extraction failure is not an error: the response carries extraction_success=false and defaulted fields so the client can fall back to manual entry.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Bill image (jpg, jpeg, png, gif, webp)"
// @Success     200 {object} UploadResponse "Extraction result"
// @Failure     400 {object} ErrorResponse "No file or unsupported type"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.ErrNoFileUploaded)
		return
	}

	mimeType, ok := uploads.MIMEType(fileHeader.Filename)
	if !ok {
		respondWithError(c, apperrors.ErrUnsupportedFileType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrFileSaveFailed, err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrFileSaveFailed, err))
		return
	}

	// The image is stored before extraction runs and stays on disk even if
	// the user never saves the bill.
	imagePath, err := h.store.Save(fileHeader.Filename, data)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrFileSaveFailed, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	fields, err := h.extractor.Extract(ctx, data, mimeType)
	if err != nil {
		// Degraded success: the upload worked, the user fills the form in.
		logger.Get().Warnw("extraction failed",
			"error", err.Error(),
			"image_path", imagePath,
		)
		c.JSON(http.StatusOK, UploadResponse{
			ImagePath:         imagePath,
			Category:          string(models.BillCategoryOther),
			Date:              time.Now().Format("2006-01-02"),
			ExtractionSuccess: false,
			Error:             "Could not read bill data. Please fill in the details manually.",
		})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		ImagePath:         imagePath,
		VendorName:        fields.VendorName,
		Category:          fields.Category,
		Date:              fields.Date,
		TotalAmount:       fields.TotalAmount,
		ExtractionSuccess: true,
	})
}
