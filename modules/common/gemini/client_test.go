package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "", "gemini-2.5-flash"); err == nil {
		t.Fatal("NewClient() with empty key should fail")
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		result  *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{"nil response", nil, "", true},
		{"no candidates", &genai.GenerateContentResponse{}, "", true},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "", true},
		{
			name: "joins text parts",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "A serene garden, "},
					nil,
					{Text: "soft pastels"},
				}},
			}}},
			want: "A serene garden, soft pastels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractText(tt.result)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateText_SendsConfigAndReadsFirstCandidate(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig map[string]float64 `json:"generationConfig"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
			return
		}
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("decode body %s: %v", raw, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[
			{"content":{"role":"model","parts":[{"text":"  A calm sea  "}]}},
			{"content":{"role":"model","parts":[{"text":"ignored"}]}}
		]}`))
	}))
	defer srv.Close()

	g, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	if err != nil {
		t.Fatalf("genai.NewClient() error = %v", err)
	}
	c := &Client{genai: g, model: "gemini-2.5-flash"}

	got, err := c.GenerateText(context.Background(), "Emotion: calm")
	if err != nil {
		t.Fatalf("GenerateText() error = %v", err)
	}
	if got != "  A calm sea  " {
		t.Errorf("GenerateText() = %q, want first candidate text", got)
	}

	if !strings.HasSuffix(gotPath, "models/gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Role != "user" ||
		len(gotBody.Contents[0].Parts) != 1 || gotBody.Contents[0].Parts[0].Text != "Emotion: calm" {
		t.Errorf("contents = %+v", gotBody.Contents)
	}

	want := map[string]float64{"temperature": 0.8, "topK": 40, "topP": 0.95, "maxOutputTokens": 200}
	for key, value := range want {
		if gotBody.GenerationConfig[key] != value {
			t.Errorf("generationConfig[%s] = %v, want %v", key, gotBody.GenerationConfig[key], value)
		}
	}
}
