package interfaces

import (
	"context"
	"encoding/json"
)

// SchemaType names the JSON types a structured response can declare.
type SchemaType string

const (
	SchemaObject  SchemaType = "object"
	SchemaArray   SchemaType = "array"
	SchemaString  SchemaType = "string"
	SchemaNumber  SchemaType = "number"
	SchemaBoolean SchemaType = "boolean"
)

// Schema describes the JSON shape requested from the model. It is a
// provider-neutral subset of OpenAPI schema objects.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// IGenerativeClient abstracts the hosted language model (e.g. Gemini).
//
// Callers treat every error, and any output they cannot validate, as a
// reason to fall back to static behaviour.
type IGenerativeClient interface {
	// GenerateJSON asks for a response constrained to schema and returns the
	// raw JSON text.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}
