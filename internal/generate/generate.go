// Package generate produces candidate colour palettes from text prompts
// using Google's Gemini models. Model output is untrusted: every colour is
// validated through the strict hex parser before it reaches callers.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/hueforge/hueforge/internal/colour"
)

const (
	// defaultColourCount is requested when the caller does not specify one.
	defaultColourCount = 5

	// maxColourCount bounds the request so a malformed prompt cannot ask
	// the model for an absurd palette.
	maxColourCount = 16
)

// promptTemplate instructs the model to answer with a bare JSON array of
// hex strings so the response can be parsed without scraping.
const promptTemplate = `You are a colour palette designer. Produce a palette of exactly %d colours for the following theme: %s

Respond with only a JSON array of 6-digit lowercase hex colour strings, for example ["#1a2b3c", "#ffcc00"]. No markdown, no commentary.`

// Options configures a generation request.
type Options struct {
	// Prompt is the palette theme description. Required.
	Prompt string

	// Count is the number of colours to request (1-16).
	// Zero means defaultColourCount.
	Count int

	// Model is the Gemini model name. Required.
	Model string

	// APIKey is the Google Gen AI API key. Required.
	APIKey string
}

// Validate checks the request before any network activity.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if o.Count < 0 || o.Count > maxColourCount {
		return fmt.Errorf("colour count must be between 1 and %d, got %d", maxColourCount, o.Count)
	}
	if o.Model == "" {
		return fmt.Errorf("model is required")
	}
	if o.APIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
	}
	return nil
}

// Generator turns prompts into validated palettes.
type Generator struct {
	logger hclog.Logger
}

// New creates a Generator. A nil logger disables logging.
func New(logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{logger: logger}
}

// Generate requests a palette from the model and validates every colour at
// ingress. A response containing any malformed colour is rejected whole.
func (g *Generator) Generate(ctx context.Context, opts Options) (*colour.Palette, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	count := opts.Count
	if count == 0 {
		count = defaultColourCount
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	prompt := fmt.Sprintf(promptTemplate, count, opts.Prompt)
	g.logger.Debug("requesting palette", "model", opts.Model, "count", count)

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	response, err := client.Models.GenerateContent(ctx, opts.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("palette generation failed: %w", err)
	}

	text, err := responseText(response)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("received response", "bytes", len(text))

	hexes, err := parseHexArray(text)
	if err != nil {
		return nil, err
	}

	palette, err := colour.NewPaletteFromHex(hexes)
	if err != nil {
		return nil, fmt.Errorf("model returned an invalid palette: %w", err)
	}
	return palette, nil
}

// responseText extracts the text payload from the first candidate.
func responseText(response *genai.GenerateContentResponse) (string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text in response")
	}
	return sb.String(), nil
}

// parseHexArray decodes the model's JSON array of hex strings. Models
// occasionally wrap JSON in markdown fences despite instructions, so
// fences are stripped before decoding.
func parseHexArray(text string) ([]string, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var hexes []string
	if err := json.Unmarshal([]byte(cleaned), &hexes); err != nil {
		return nil, fmt.Errorf("failed to parse model response as a hex array: %w", err)
	}
	if len(hexes) == 0 {
		return nil, fmt.Errorf("model returned an empty palette")
	}
	return hexes, nil
}
