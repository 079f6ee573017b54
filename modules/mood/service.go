package mood

import (
	"context"
	"fmt"
	"time"

	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/model"
	"art-therapy-server/modules/common/store"
)

// DefaultLimit - 감정 일기 기본 페이지 크기
const DefaultLimit = 30

// History - GET /mood/journal 응답 data
type History struct {
	Entries []model.MoodEntry `json:"entries"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	HasMore bool              `json:"hasMore"`
}

// Service - 감정 일기 저장/조회/분석
type Service struct {
	entries  store.MoodStore
	now      func() time.Time
	location *time.Location
}

// NewService - 일별 집계는 서버 로컬 시간대 기준
func NewService(entries store.MoodStore) *Service {
	return &Service{
		entries:  entries,
		now:      time.Now,
		location: time.Local,
	}
}

// Create - 검증된 입력으로 항목 저장 (timestamp는 지금)
func (s *Service) Create(ctx context.Context, input model.MoodInput) (*model.MoodEntry, error) {
	intensity := input.Intensity
	if intensity == 0 {
		intensity = model.DefaultIntensity
	}

	entry, err := s.entries.CreateMoodEntry(ctx, &model.MoodEntry{
		Emotion:     input.Emotion,
		Description: input.Description,
		Intensity:   intensity,
		Notes:       input.Notes,
		Timestamp:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save mood entry: %w", err)
	}

	logger.Infof("📝 Mood entry saved: %s (%s, %d)", entry.ID, entry.Emotion, entry.Intensity)
	return entry, nil
}

// History - timestamp 내림차순 페이지
func (s *Service) History(ctx context.Context, limit, offset int) (*History, error) {
	entries, total, err := s.entries.FindMoodEntries(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mood history: %w", err)
	}

	return &History{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: model.HasMore(offset, limit, total),
	}, nil
}

// Analytics - 기간 내 항목 집계 (매 호출마다 새로 계산)
func (s *Service) Analytics(ctx context.Context, period string) (*Analytics, error) {
	cutoff := s.now().Add(-Window(period))

	entries, err := s.entries.FindMoodEntriesSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mood analytics: %w", err)
	}

	return Summarize(period, entries, s.location), nil
}
