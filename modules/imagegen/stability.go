package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"art-therapy-server/modules/common/logger"
)

// StabilityModelID - SDXL 1.0 엔진
const StabilityModelID = "stable-diffusion-xl-1024-v1-0"

const stabilityTimeout = 60 * time.Second

// StabilityProvider - Stability REST API 클라이언트
type StabilityProvider struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewStabilityProvider - apiURL은 text-to-image 엔드포인트 전체 주소
func NewStabilityProvider(apiKey, apiURL string) *StabilityProvider {
	return &StabilityProvider{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: stabilityTimeout},
	}
}

// Model - 메타데이터에 기록할 모델 id
func (p *StabilityProvider) Model() string {
	return StabilityModelID
}

// Generate - 1024x1024 한 장 생성, PNG data URL 반환
func (p *StabilityProvider) Generate(ctx context.Context, prompt string) (*Image, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("STABILITY_API_KEY not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, stabilityTimeout)
	defer cancel()

	body := stabilityRequest{
		TextPrompts: []stabilityTextPrompt{{Text: prompt, Weight: 1}},
		CfgScale:    7,
		Height:      1024,
		Width:       1024,
		Samples:     1,
		Steps:       30,
		StylePreset: "enhance",
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	logger.Infof("🎨 [Stability] Generating image - prompt: %s", truncateForLog(prompt, 50))

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stability API error: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("❌ [Stability] API error: status=%d, body=%s", resp.StatusCode, truncateForLog(string(bodyBytes), 200))
		return nil, fmt.Errorf("stability API returned status %d", resp.StatusCode)
	}

	var parsed stabilityResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Artifacts) == 0 || parsed.Artifacts[0].Base64 == "" {
		return nil, fmt.Errorf("no image generated from Stability")
	}

	artifact := parsed.Artifacts[0]
	logger.Infof("✅ [Stability] Image generated successfully")

	return &Image{
		DataURL:       "data:image/png;base64," + artifact.Base64,
		RevisedPrompt: prompt,
		Seed:          artifact.Seed,
	}, nil
}
