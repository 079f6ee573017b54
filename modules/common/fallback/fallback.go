// Package fallback holds the deterministic content used when an upstream AI
// service is unavailable: emotion-keyed prompts and the placeholder image.
package fallback

import (
	"strings"

	"art-therapy-server/modules/common/model"
)

// PlaceholderImageURL - 1024x1024 파란 배경 "Generated Art Placeholder" SVG
const PlaceholderImageURL = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMTAyNCIgaGVpZ2h0PSIxMDI0IiB2aWV3Qm94PSIwIDAgMTAyNCAxMDI0IiBmaWxsPSJub25lIiB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciPgo8cmVjdCB3aWR0aD0iMTAyNCIgaGVpZ2h0PSIxMDI0IiBmaWxsPSIjNEE5MEUyIi8+Cjx0ZXh0IHg9IjUxMiIgeT0iNTEyIiBmb250LWZhbWlseT0iQXJpYWwsIHNhbnMtc2VyaWYiIGZvbnQtc2l6ZT0iMjQiIGZpbGw9IndoaXRlIiB0ZXh0LWFuY2hvcj0ibWlkZGxlIiBkeT0iLjNlbSI+R2VuZXJhdGVkIEFydCBQbGFjZWhvbGRlcjwvdGV4dD4KPC9zdmc+"

// PlaceholderSize - placeholder 이미지 크기
const PlaceholderSize = "1024x1024"

// DefaultPrompt - 감정이 없거나 목록에 없을 때
const DefaultPrompt = "A beautiful, therapeutic artwork with soft colors and peaceful elements"

var emotionPrompts = map[string]string{
	model.EmotionHappy:    "A bright, joyful scene with warm colors, soft lighting, and peaceful elements",
	model.EmotionSad:      "A gentle, melancholic landscape with soft blues and purples, representing healing and hope",
	model.EmotionAngry:    "A powerful storm clearing away darkness, dynamic energy transforming into calm",
	model.EmotionAnxious:  "A serene garden with flowing water, soft pastels, representing peace and tranquility",
	model.EmotionCalm:     "A peaceful mountain lake at sunrise, soft watercolor style, meditative and serene",
	model.EmotionConfused: "A misty forest path leading to a clearing, soft light breaking through, representing clarity",
	model.EmotionExcited:  "A vibrant celebration of colors and movement, energetic yet harmonious",
}

// EmotionPrompt - 감정별 기본 프롬프트 (대소문자 무시)
func EmotionPrompt(emotion string) string {
	if p, ok := emotionPrompts[model.NormalizeEmotion(emotion)]; ok {
		return p
	}
	return DefaultPrompt
}

// Prompt - 감정 프롬프트 + ", <style> style" + ", incorporating the theme of <focusWord>"
func Prompt(emotion, style, focusWord string) string {
	prompt := EmotionPrompt(emotion)

	if s := SafeString(style, ""); s != "" {
		prompt += ", " + s + " style"
	}
	if f := SafeString(focusWord, ""); f != "" {
		prompt += ", incorporating the theme of " + f
	}

	return prompt
}

// SafeString returns a trimmed string or the provided fallback.
func SafeString(value interface{}, fallback string) string {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return fallback
}
