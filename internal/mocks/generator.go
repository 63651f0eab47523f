package mocks

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/mock"
)

// MockTextGenerator is a testify mock for the generation service boundary.
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, modelID, prompt string, schema *genai.Schema) (string, error) {
	args := m.Called(ctx, modelID, prompt, schema)
	return args.String(0), args.Error(1)
}

// StaticTextGenerator returns canned output and records what it was called
// with, for tests that care about the pipeline rather than the call.
type StaticTextGenerator struct {
	Output string
	Err    error

	Calls       int
	LastModelID string
	LastPrompt  string
	LastSchema  *genai.Schema
}

func (g *StaticTextGenerator) GenerateText(ctx context.Context, modelID, prompt string, schema *genai.Schema) (string, error) {
	g.Calls++
	g.LastModelID = modelID
	g.LastPrompt = prompt
	g.LastSchema = schema
	if g.Err != nil {
		return "", g.Err
	}
	return g.Output, nil
}
