package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mealmind/backend/config"
)

// TextGenerator is the boundary to the external generation service. A single
// synchronous call with a model id, a prompt and an optional response schema,
// returning raw output text. No retries happen at this level.
type TextGenerator interface {
	GenerateText(ctx context.Context, modelID, prompt string, schema *genai.Schema) (string, error)
}

// GeminiService implements TextGenerator on top of the Google Gemini API.
type GeminiService struct {
	client *genai.Client
}

// NewGeminiService creates a Gemini-backed generator from the configured API key.
func NewGeminiService(ctx context.Context, cfg *config.Config) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiService{client: client}, nil
}

// GenerateText sends the prompt to the selected model and returns the raw
// generated text. When a schema is given, the model is constrained to emit
// JSON matching it natively.
func (s *GeminiService) GenerateText(ctx context.Context, modelID, prompt string, schema *genai.Schema) (string, error) {
	model := s.client.GenerativeModel(modelID)
	if schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (s *GeminiService) Close() error {
	return s.client.Close()
}

// decodeDocument parses sanitized model output into the typed document. A
// parse failure yields a DecodeError carrying the offending text so callers
// can log it; the text itself must never reach the end user.
func decodeDocument(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &DecodeError{Raw: raw, Err: err}
	}
	return nil
}
