// Package imagegen renders a prompt into a single 1024x1024 image through a
// configurable provider. In development mode provider failures degrade to a
// placeholder image instead of an error.
package imagegen

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/fallback"
	"art-therapy-server/modules/common/logger"
)

// Provider - 이미지 생성 백엔드 (Stability, OpenAI)
type Provider interface {
	Generate(ctx context.Context, prompt string) (*Image, error)
	Model() string
}

// Generator - provider + 개발 모드 placeholder fallback
type Generator struct {
	provider    Provider
	development bool
	now         func() time.Time
}

// NewGenerator - development가 true면 실패 시 placeholder 반환
func NewGenerator(provider Provider, development bool) *Generator {
	return &Generator{
		provider:    provider,
		development: development,
		now:         time.Now,
	}
}

// Model - 현재 provider의 모델 id
func (g *Generator) Model() string {
	return g.provider.Model()
}

// Generate - 프롬프트로 이미지 생성
func (g *Generator) Generate(ctx context.Context, prompt string) (*Result, error) {
	truncated := TruncatePrompt(prompt)

	image, err := g.provider.Generate(ctx, truncated)
	if err != nil {
		if g.development {
			logger.Warnf("⚠️  [ImageGen] %s failed, returning placeholder (development): %v", g.provider.Model(), err)
			return g.placeholder(prompt), nil
		}
		logger.Errorf("❌ [ImageGen] %s failed: %v", g.provider.Model(), err)
		return nil, fmt.Errorf("image generation failed: %w: %w", apperror.ErrUpstream, err)
	}

	return &Result{
		URL:           image.DataURL,
		Size:          ImageSize,
		RevisedPrompt: fallback.SafeString(image.RevisedPrompt, truncated),
		CreatedAt:     g.now().UTC(),
		Seed:          image.Seed,
		Model:         g.provider.Model(),
	}, nil
}

// placeholder - 원본(자르기 전) 프롬프트를 revisedPrompt로 사용
func (g *Generator) placeholder(prompt string) *Result {
	return &Result{
		URL:           fallback.PlaceholderImageURL,
		Size:          fallback.PlaceholderSize,
		RevisedPrompt: prompt,
		CreatedAt:     g.now().UTC(),
		Model:         g.provider.Model(),
		IsPlaceholder: true,
	}
}

// TruncatePrompt - 500자 초과 시 497자 + "..."
func TruncatePrompt(prompt string) string {
	if utf8.RuneCountInString(prompt) <= MaxPromptLength {
		return prompt
	}
	runes := []rune(prompt)
	return string(runes[:MaxPromptLength-3]) + "..."
}

var blockedTerms = []string{"violence", "harmful", "explicit", "nsfw"}

// ValidatePrompt - 빈 프롬프트/금지어 거부, 길이 초과는 경고만
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return apperror.Validation("Prompt cannot be empty")
	}

	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		logger.Warnf("⚠️  [ImageGen] Prompt is %d characters and will be truncated", utf8.RuneCountInString(prompt))
	}

	lower := strings.ToLower(prompt)
	for _, term := range blockedTerms {
		if strings.Contains(lower, term) {
			return apperror.Validation("Prompt contains potentially problematic content")
		}
	}

	return nil
}

func truncateForLog(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}
