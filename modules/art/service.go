package art

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/model"
	"art-therapy-server/modules/common/store"
)

// Service - 프롬프트 강화 → 이미지 생성 → 저장 파이프라인
type Service struct {
	enhancer PromptEnhancer
	images   ImageGenerator
	artworks store.ArtworkStore
	statuses StatusTracker
	model    string
	newID    func() string
	now      func() time.Time
}

// NewService - statuses가 nil이면 상태 추적 없이 동작
// modelID는 작품 메타데이터에 기록되는 이미지 모델 id
func NewService(enhancer PromptEnhancer, images ImageGenerator, artworks store.ArtworkStore, statuses StatusTracker, modelID string) *Service {
	return &Service{
		enhancer: enhancer,
		images:   images,
		artworks: artworks,
		statuses: statuses,
		model:    modelID,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Run - 요청 한 건 처리. 이미지 생성/저장 실패 시 아무것도 저장하지 않음
func (s *Service) Run(ctx context.Context, input model.ArtInput) (*Result, error) {
	requestID := s.newID()
	logger.Infof("🎨 Starting art generation for request %s", requestID)
	s.setStatus(ctx, requestID, model.StatusProcessing)

	// Step 1: 프롬프트 강화
	enhanced := s.enhancer.Enhance(ctx, input)
	logger.Infof("✨ [%s] Enhanced prompt: %s", requestID, enhanced)

	// Step 2: 이미지 생성
	image, err := s.images.Generate(ctx, enhanced)
	if err != nil {
		s.setStatus(ctx, requestID, model.StatusFailed)
		logger.Errorf("❌ [%s] Art generation failed: %v", requestID, err)
		return nil, fmt.Errorf("art generation failed: %w", err)
	}
	logger.Infof("🖼️  [%s] Image generated (placeholder: %v)", requestID, image.IsPlaceholder)

	modelID := image.Model
	if modelID == "" {
		modelID = s.model
	}

	// Step 3: 갤러리에 저장
	artwork, err := s.artworks.CreateArtwork(ctx, &model.Artwork{
		ImageURL:       image.URL,
		Prompt:         enhanced,
		OriginalPrompt: input.Description,
		Emotion:        input.Emotion,
		FocusWord:      input.FocusWord,
		Style:          input.Style,
		Metadata: model.ArtworkMetadata{
			RequestID:     requestID,
			Model:         modelID,
			Size:          image.Size,
			IsPlaceholder: image.IsPlaceholder,
			Seed:          image.Seed,
		},
	})
	if err != nil {
		s.setStatus(ctx, requestID, model.StatusFailed)
		logger.Errorf("❌ [%s] Failed to save artwork: %v", requestID, err)
		return nil, fmt.Errorf("art generation failed: %w", err)
	}

	s.setStatus(ctx, requestID, model.StatusCompleted)
	logger.Infof("✅ [%s] Artwork saved: %s", requestID, artwork.ID)

	return &Result{
		RequestID: requestID,
		ImageURL:  image.URL,
		Prompt:    enhanced,
		Artwork:   artwork,
		Status:    model.StatusCompleted,
	}, nil
}

// Status - 기록된 상태 조회. 추적이 꺼져있거나 모르는 id면 "completed"
func (s *Service) Status(ctx context.Context, requestID string) *StatusResponse {
	status := model.StatusCompleted

	if s.statuses != nil {
		recorded, found, err := s.statuses.GetStatus(ctx, requestID)
		if err != nil {
			logger.Warnf("⚠️  Failed to read status for %s: %v", requestID, err)
		} else if found {
			status = recorded
		}
	}

	return &StatusResponse{
		Success:   true,
		Status:    status,
		RequestID: requestID,
		Timestamp: s.now().UTC(),
	}
}

// setStatus - 상태 기록 실패는 로그만 남김
func (s *Service) setStatus(ctx context.Context, requestID, status string) {
	if s.statuses == nil {
		return
	}
	if err := s.statuses.SetStatus(ctx, requestID, status); err != nil {
		logger.Warnf("⚠️  Failed to record status %s for %s: %v", status, requestID, err)
	}
}
