package art

import (
	"context"
	"time"

	"art-therapy-server/modules/common/model"
	"art-therapy-server/modules/imagegen"
)

// PromptEnhancer - 감정 입력을 이미지 프롬프트로 (실패하지 않음)
type PromptEnhancer interface {
	Enhance(ctx context.Context, input model.ArtInput) string
}

// ImageGenerator - 프롬프트로 이미지 한 장 생성
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (*imagegen.Result, error)
}

// StatusTracker - requestId별 생성 상태 기록 (redis.StatusStore)
type StatusTracker interface {
	SetStatus(ctx context.Context, requestID, status string) error
	GetStatus(ctx context.Context, requestID string) (string, bool, error)
}

// Result - POST /art/generate 응답 data
type Result struct {
	RequestID string         `json:"requestId"`
	ImageURL  string         `json:"imageUrl"`
	Prompt    string         `json:"prompt"`
	Artwork   *model.Artwork `json:"artwork"`
	Status    string         `json:"status"`
}

// StatusResponse - GET /art/status/{requestId} 응답
type StatusResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}
