// Package extraction turns bill images into structured field guesses using
// an external vision model. Callers treat it as an opaque capability: any
// failure (timeout, transport error, unparseable model output) surfaces as a
// plain error and is converted to a degraded-success response upstream,
// never a fatal one.
package extraction

import (
	"context"
	"errors"
)

// Fields is the best-effort structured guess extracted from a bill image.
// TotalAmount is nil when the model could not read an amount.
type Fields struct {
	VendorName  string   `json:"vendor_name"`
	Category    string   `json:"category"`
	Date        string   `json:"date"` // YYYY-MM-DD
	TotalAmount *float64 `json:"total_amount"`
}

// Extractor defines the contract for bill field extraction.
type Extractor interface {
	// Extract analyzes a bill image and returns the extracted fields.
	Extract(ctx context.Context, imageData []byte, mimeType string) (*Fields, error)
	// Close releases any resources held by the extractor.
	Close() error
}

// ErrNotConfigured is returned by Disabled when no extractor is available.
var ErrNotConfigured = errors.New("extraction is not configured")

// Disabled is an Extractor used when no API key is configured. Every call
// fails, which the upload flow reports as extraction_success=false so the
// user falls back to manual entry.
type Disabled struct{}

func (Disabled) Extract(context.Context, []byte, string) (*Fields, error) {
	return nil, ErrNotConfigured
}

func (Disabled) Close() error { return nil }
