package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/alttext/internal/domain"
)

func testImage(t *testing.T) *domain.Image {
	t.Helper()
	img, err := domain.NewImage(domain.File{Data: []byte("pixels"), MIME: "image/png", Name: "cat.png"})
	require.NoError(t, err)
	return img
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestOpenAI_CompleteWithImage(t *testing.T) {
	img := testImage(t)
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"A cat on a mat."},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	model := NewOpenAI(Config{BaseURL: srv.URL + "/v1", Model: "gemma-3-4b-it-qat"})
	text, err := model.Complete(context.Background(), "Describe", img)

	require.NoError(t, err)
	assert.Equal(t, "A cat on a mat.", text)
	assert.Equal(t, "gemma-3-4b-it-qat", body["model"])

	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	assert.Equal(t, "Describe", content[0].(map[string]any)["text"])
	imageURL := content[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, img.DataURI, imageURL["url"])
}

func TestOpenAI_CompleteTextOnly(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"cat, mat"}}]}`)
	}))
	defer srv.Close()

	model := NewOpenAI(Config{BaseURL: srv.URL, Model: "m"})
	text, err := model.Complete(context.Background(), "Tags please", nil)

	require.NoError(t, err)
	assert.Equal(t, "cat, mat", text)
	messages := body["messages"].([]any)
	assert.Equal(t, "Tags please", messages[0].(map[string]any)["content"])
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"model crashed"}}`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			model := NewOpenAI(Config{BaseURL: srv.URL, Model: "m"})
			_, err := model.Complete(context.Background(), "x", nil)

			assert.Error(t, err)
		})
	}
}

func TestOllama_Complete(t *testing.T) {
	img := testImage(t)
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"model":"llava","response":"A cat.","done":true}`+"\n")
	}))
	defer srv.Close()

	model, err := NewOllama(Config{BaseURL: srv.URL, Model: "llava"})
	require.NoError(t, err)

	text, err := model.Complete(context.Background(), "Describe", img)

	require.NoError(t, err)
	assert.Equal(t, "A cat.", text)
	assert.Equal(t, "llava", body["model"])
	assert.Equal(t, false, body["stream"])
	images := body["images"].([]any)
	require.Len(t, images, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pixels")), images[0])
}

func TestOllama_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"model \"llava\" not found"}`)
	}))
	defer srv.Close()

	model, err := NewOllama(Config{BaseURL: srv.URL, Model: "llava"})
	require.NoError(t, err)

	_, err = model.Complete(context.Background(), "Describe", nil)
	assert.Error(t, err)
}

func TestAnthropic_Complete(t *testing.T) {
	img := testImage(t)
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		body = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude","content":[{"type":"text","text":"A cat."}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`)
	}))
	defer srv.Close()

	model := NewAnthropic(Config{APIKey: "test-key", BaseURL: srv.URL + "/", Model: "claude"})
	text, err := model.Complete(context.Background(), "Describe", img)

	require.NoError(t, err)
	assert.Equal(t, "A cat.", text)

	messages := body["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	source := content[0].(map[string]any)["source"].(map[string]any)
	assert.Equal(t, "base64", source["type"])
	assert.Equal(t, "image/png", source["media_type"])
	assert.Equal(t, img.Base64(), source["data"])
	assert.Equal(t, "Describe", content[1].(map[string]any)["text"])
}

func TestGeminiText(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("A cat "), genai.Text("on a mat.")}},
			}}},
			expected: "A cat on a mat.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, geminiText(tt.resp))
		})
	}
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), Config{Model: "gemini-1.5-flash"})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestNewVisionModel(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")

	tests := []struct {
		provider string
		wantName string
	}{
		{"", "openai/gemma-3-4b-it-qat"},
		{"openai", "openai/gemma-3-4b-it-qat"},
		{"OLLAMA", "ollama/llava"},
		{"anthropic", "anthropic/claude-3-5-haiku-latest"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			model, err := NewVisionModel(context.Background(), Config{Provider: tt.provider})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, model.Name())
		})
	}
}

func TestNewVisionModel_UnknownProvider(t *testing.T) {
	_, err := NewVisionModel(context.Background(), Config{Provider: "llamafile"})
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}
