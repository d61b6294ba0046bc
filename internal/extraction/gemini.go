package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const billScanPrompt = `You are a bill analysis assistant. Analyze the bill image and return ONLY a valid JSON object ` +
	`with no extra text, no markdown, no code blocks, using this exact structure: ` +
	`{"vendor_name": string, "category": one of [food, travel, utilities, shopping, healthcare, entertainment, other], ` +
	`"date": "YYYY-MM-DD or null", "total_amount": number or null}. ` +
	`Return ONLY the JSON object, nothing else.`

// Gemini implements the Extractor interface using Google Gemini.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a new Gemini Extractor instance.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Extract analyzes a bill image and returns the extracted fields. The caller
// bounds the call with a context deadline; a timeout is reported as an error
// like any other failure.
func (g *Gemini) Extract(ctx context.Context, imageData []byte, mimeType string) (*Fields, error) {
	// genai.ImageData expects just the format suffix (e.g. "png"),
	// not the full MIME type (e.g. "image/png").
	format := strings.TrimPrefix(mimeType, "image/")

	parts := []genai.Part{
		genai.ImageData(format, imageData),
		genai.Text(billScanPrompt),
	}

	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText.WriteString(string(text))
		}
	}

	fields, err := parseFields(responseText.String())
	if err != nil {
		return nil, fmt.Errorf("parsing bill data: %w", err)
	}

	return fields, nil
}

// Close closes the Gemini client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
