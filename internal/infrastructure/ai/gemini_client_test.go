package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenaiSchema(t *testing.T) {
	in := &interfaces.Schema{
		Type: interfaces.SchemaObject,
		Properties: map[string]*interfaces.Schema{
			"analysis":  {Type: interfaces.SchemaString},
			"checklist": {Type: interfaces.SchemaArray, Items: &interfaces.Schema{Type: interfaces.SchemaString}},
			"price":     {Type: interfaces.SchemaNumber},
			"free":      {Type: interfaces.SchemaBoolean},
		},
		Required: []string{"analysis"},
	}

	out := toGenaiSchema(in)
	assert.Equal(t, genai.TypeObject, out.Type)
	assert.Equal(t, genai.TypeString, out.Properties["analysis"].Type)
	assert.Equal(t, genai.TypeArray, out.Properties["checklist"].Type)
	assert.Equal(t, genai.TypeString, out.Properties["checklist"].Items.Type)
	assert.Equal(t, genai.TypeNumber, out.Properties["price"].Type)
	assert.Equal(t, genai.TypeBoolean, out.Properties["free"].Type)
	assert.Equal(t, []string{"analysis"}, out.Required)
	assert.Nil(t, toGenaiSchema(nil))
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", "")
	assert.Error(t, err)
}

func geminiServer(t *testing.T, text string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"boom","status":"INVALID_ARGUMENT"}}`))
			return
		}
		body := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": text}},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiClient_GenerateJSON(t *testing.T) {
	srv := geminiServer(t, `{"analysis":"ok","checklist":["a"]}`, http.StatusOK)
	client, err := NewGeminiClient(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)

	raw, err := client.GenerateJSON(context.Background(), "prompt", &interfaces.Schema{Type: interfaces.SchemaObject})
	require.NoError(t, err)
	assert.JSONEq(t, `{"analysis":"ok","checklist":["a"]}`, string(raw))
}

func TestGeminiClient_MalformedJSON(t *testing.T) {
	srv := geminiServer(t, `not json`, http.StatusOK)
	client, err := NewGeminiClient(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)

	_, err = client.GenerateJSON(context.Background(), "prompt", nil)
	assert.Error(t, err)
}

func TestGeminiClient_ServerError(t *testing.T) {
	srv := geminiServer(t, "", http.StatusBadRequest)
	client, err := NewGeminiClient(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)

	_, err = client.GenerateText(context.Background(), "prompt")
	assert.Error(t, err)
}
