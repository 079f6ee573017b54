package imagegen

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"art-therapy-server/modules/common/fallback"
	"art-therapy-server/modules/common/logger"
)

// OpenAIProvider - OpenAI Images API (b64_json 응답)
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider - baseURL이 비어있으면 기본 OpenAI 엔드포인트
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Model - 메타데이터에 기록할 모델 id
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Generate - 1024x1024 한 장 생성, PNG data URL 반환
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (*Image, error) {
	logger.Infof("🎨 [OpenAI] Generating image (%s) - prompt: %s", p.model, truncateForLog(prompt, 50))

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image API error: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image data in OpenAI response")
	}

	logger.Infof("✅ [OpenAI] Image generated successfully")
	return &Image{
		DataURL:       "data:image/png;base64," + resp.Data[0].B64JSON,
		RevisedPrompt: fallback.SafeString(resp.Data[0].RevisedPrompt, prompt),
	}, nil
}
