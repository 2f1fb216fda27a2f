// Package gemini generates item descriptions with the Gemini text model.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator sends single-turn prompts to a Gemini model.
type Generator struct {
	models *genai.Models
	model  string
	config *genai.GenerateContentConfig
}

// NewGenerator connects to the Gemini API using apiKey.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Generator{
		models: client.Models,
		model:  model,
		config: generationConfig(),
	}, nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopP:        genai.Ptr[float32](0.8),
		TopK:        genai.Ptr[float32](40),
	}
}

// Generate returns the model's text for prompt. An empty string with a nil
// error means the model answered with no text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}
