package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"agencia_maker/internal/usecase/interfaces"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

var ErrEmptyResponse = errors.New("empty model response")

// GeminiClient calls the Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ interfaces.IGenerativeClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client for apiKey. baseURL is optional and only
// used to point the SDK at a different host (tests, proxies).
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *interfaces.Schema) (json.RawMessage, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("gemini returned malformed JSON")
	}
	return json.RawMessage(text), nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *GeminiClient) Name() string {
	return fmt.Sprintf("genai:%s", c.model)
}

func toGenaiSchema(s *interfaces.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Items:       toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func toGenaiType(t interfaces.SchemaType) genai.Type {
	switch t {
	case interfaces.SchemaObject:
		return genai.TypeObject
	case interfaces.SchemaArray:
		return genai.TypeArray
	case interfaces.SchemaNumber:
		return genai.TypeNumber
	case interfaces.SchemaBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
