// Package prompt turns a user's emotional input into a therapeutic image
// prompt. Text generation is best effort: every failure degrades to a
// deterministic emotion-keyed prompt, so Enhance never returns an error.
package prompt

import (
	"context"
	"strings"

	"art-therapy-server/modules/common/fallback"
	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/model"
)

// TextGenerator - 프롬프트 한 번 호출해서 텍스트를 받는 생성기 (gemini.Client)
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Enhancer - 텍스트 생성기 + fallback
type Enhancer struct {
	generator TextGenerator
}

// NewEnhancer - generator가 nil이면 항상 fallback 사용
func NewEnhancer(generator TextGenerator) *Enhancer {
	if generator == nil {
		logger.Warnf("⚠️  Prompt enhancer running without a text generator, using fallback prompts")
	}
	return &Enhancer{generator: generator}
}

// Enhance - 강화된 프롬프트 반환 (실패 시 fallback)
func (e *Enhancer) Enhance(ctx context.Context, input model.ArtInput) string {
	if e.generator == nil {
		return Fallback(input)
	}

	userInput := BuildUserInput(input.Emotion, input.Description, input.FocusWord, input.Style)
	text, err := e.generator.GenerateText(ctx, BuildRequest(userInput))
	if err != nil {
		logger.Warnf("⚠️  [Prompt] Text generation failed, using fallback: %v", err)
		return Fallback(input)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Warnf("⚠️  [Prompt] Empty response from text generator, using fallback")
		return Fallback(input)
	}

	logger.Debugf("✨ [Prompt] Enhanced prompt: %s", text)
	return text
}

// Fallback - 감정별 고정 프롬프트 + style/focusWord 접미사
func Fallback(input model.ArtInput) string {
	return fallback.Prompt(input.Emotion, input.Style, input.FocusWord)
}
