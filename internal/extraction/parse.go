package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"billtracker/internal/models"
)

// parseFields parses the JSON response from the vision model.
func parseFields(text string) (*Fields, error) {
	text = strings.TrimSpace(text)

	// Remove markdown code blocks if present
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Find the JSON object boundaries - look for first { and last }
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}

	text = text[startIdx : endIdx+1]

	var fields Fields
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	fields.VendorName = strings.TrimSpace(fields.VendorName)
	fields.Category = string(models.NormalizeCategory(fields.Category))
	fields.Date = normalizeDate(fields.Date)

	return &fields, nil
}

// normalizeDate coerces model-reported dates into YYYY-MM-DD, defaulting to
// today when the date is missing or unreadable.
func normalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" || date == "null" {
		return time.Now().Format("2006-01-02")
	}

	if d, err := time.Parse("2006-01-02", date); err == nil {
		return d.Format("2006-01-02")
	}

	// Models occasionally answer in other common formats.
	for _, format := range []string{"2006/01/02", "01/02/2006", "02-01-2006"} {
		if d, err := time.Parse(format, date); err == nil {
			return d.Format("2006-01-02")
		}
	}

	return time.Now().Format("2006-01-02")
}
