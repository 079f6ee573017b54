package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"art-therapy-server/modules/common/model"
)

type stubGenerator struct {
	text     string
	err      error
	received string
	calls    int
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.received = prompt
	return s.text, s.err
}

func TestBuildUserInput(t *testing.T) {
	got := BuildUserInput("anxious", " work stress ", "", "watercolor")
	want := "Emotion: anxious\nDescription: work stress\nStyle preference: watercolor"
	if got != want {
		t.Errorf("BuildUserInput() = %q, want %q", got, want)
	}

	if got := BuildUserInput("", "", "", ""); got != "" {
		t.Errorf("BuildUserInput(empty) = %q, want empty", got)
	}
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest("Focus word: ocean")

	if !strings.HasPrefix(req, "You are a therapeutic art prompt generator.") {
		t.Error("request should start with the system instructions")
	}
	if !strings.Contains(req, "\n\nUser Input: Focus word: ocean\n\n") {
		t.Errorf("request missing user input block: %q", req)
	}
	if !strings.HasSuffix(req, "Generate a therapeutic art prompt:") {
		t.Error("request should end with the generation cue")
	}
	if strings.Count(req, "Output: ") != 2 {
		t.Error("request should contain two worked examples")
	}
}

func TestEnhance_UsesGeneratorText(t *testing.T) {
	gen := &stubGenerator{text: "  A lighthouse guiding ships through calm night waters  \n"}
	e := NewEnhancer(gen)

	got := e.Enhance(context.Background(), model.ArtInput{Emotion: "calm", FocusWord: "light"})

	if got != "A lighthouse guiding ships through calm night waters" {
		t.Errorf("Enhance() = %q, want trimmed generator text", got)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if !strings.Contains(gen.received, "Emotion: calm\nFocus word: light") {
		t.Errorf("generator did not receive user input: %q", gen.received)
	}
}

func TestEnhance_FallsBack(t *testing.T) {
	input := model.ArtInput{Emotion: "sad", Style: "impressionist", FocusWord: "rain"}
	want := "A gentle, melancholic landscape with soft blues and purples, representing healing and hope, impressionist style, incorporating the theme of rain"

	tests := []struct {
		name      string
		generator TextGenerator
	}{
		{"no generator", nil},
		{"generator error", &stubGenerator{err: errors.New("deadline exceeded")}},
		{"blank response", &stubGenerator{text: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnhancer(tt.generator)
			if got := e.Enhance(context.Background(), input); got != want {
				t.Errorf("Enhance() = %q, want %q", got, want)
			}
		})
	}
}

func TestFallback_AllEmotions(t *testing.T) {
	want := map[string]string{
		"happy":    "A bright, joyful scene with warm colors, soft lighting, and peaceful elements",
		"sad":      "A gentle, melancholic landscape with soft blues and purples, representing healing and hope",
		"angry":    "A powerful storm clearing away darkness, dynamic energy transforming into calm",
		"anxious":  "A serene garden with flowing water, soft pastels, representing peace and tranquility",
		"calm":     "A peaceful mountain lake at sunrise, soft watercolor style, meditative and serene",
		"confused": "A misty forest path leading to a clearing, soft light breaking through, representing clarity",
		"excited":  "A vibrant celebration of colors and movement, energetic yet harmonious",
		"":         "A beautiful, therapeutic artwork with soft colors and peaceful elements",
	}

	for emotion, expected := range want {
		if got := Fallback(model.ArtInput{Emotion: emotion}); got != expected {
			t.Errorf("Fallback(%q) = %q, want %q", emotion, got, expected)
		}
	}
}

func TestFallback_IsDeterministic(t *testing.T) {
	input := model.ArtInput{Emotion: "anxious", FocusWord: "ocean"}
	first := Fallback(input)
	for i := 0; i < 5; i++ {
		if got := Fallback(input); got != first {
			t.Fatalf("Fallback() not deterministic: %q vs %q", got, first)
		}
	}
	if !strings.HasSuffix(first, ", incorporating the theme of ocean") {
		t.Errorf("Fallback() = %q, want focus word suffix", first)
	}
}
