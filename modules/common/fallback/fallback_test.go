package fallback

import (
	"encoding/base64"
	"strings"
	"testing"

	"art-therapy-server/modules/common/model"
)

func TestEmotionPrompt_CoversEveryEmotion(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range model.Emotions {
		p := EmotionPrompt(e)
		if p == DefaultPrompt {
			t.Errorf("emotion %q fell through to the default prompt", e)
		}
		if seen[p] {
			t.Errorf("emotion %q shares a prompt with another emotion", e)
		}
		seen[p] = true
	}

	if got := EmotionPrompt("  ANXIOUS "); got != emotionPrompts[model.EmotionAnxious] {
		t.Errorf("EmotionPrompt should normalize case, got %q", got)
	}
	if got := EmotionPrompt("bored"); got != DefaultPrompt {
		t.Errorf("EmotionPrompt(unknown) = %q, want default", got)
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		emotion string
		style   string
		focus   string
		want    string
	}{
		{"emotion only", "calm", "", "", "A peaceful mountain lake at sunrise, soft watercolor style, meditative and serene"},
		{"style and focus", "anxious", "watercolor", "ocean",
			"A serene garden with flowing water, soft pastels, representing peace and tranquility, watercolor style, incorporating the theme of ocean"},
		{"focus only", "", "", " home ", DefaultPrompt + ", incorporating the theme of home"},
		{"blank style ignored", "excited", "   ", "",
			"A vibrant celebration of colors and movement, energetic yet harmonious"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prompt(tt.emotion, tt.style, tt.focus); got != tt.want {
				t.Errorf("Prompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(PlaceholderImageURL, prefix) {
		t.Fatalf("placeholder is not an SVG data URL")
	}

	svg, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(PlaceholderImageURL, prefix))
	if err != nil {
		t.Fatalf("placeholder payload is not base64: %v", err)
	}
	if !strings.Contains(string(svg), "Generated Art Placeholder") {
		t.Errorf("unexpected placeholder SVG: %s", svg)
	}
}

func TestSafeString(t *testing.T) {
	if got := SafeString("  x ", "d"); got != "x" {
		t.Errorf("SafeString(trim) = %q", got)
	}
	if got := SafeString(" ", "d"); got != "d" {
		t.Errorf("SafeString(blank) = %q", got)
	}
	if got := SafeString(42, "d"); got != "d" {
		t.Errorf("SafeString(non-string) = %q", got)
	}
}
