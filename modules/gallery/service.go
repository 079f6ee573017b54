package gallery

import (
	"context"
	"fmt"

	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/model"
	"art-therapy-server/modules/common/store"
	"art-therapy-server/modules/imagegen"
)

// DefaultLimit - 갤러리 기본 페이지 크기
const DefaultLimit = 20

// Page - GET /gallery 응답 data
type Page struct {
	Artworks []model.Artwork `json:"artworks"`
	Total    int             `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
	HasMore  bool            `json:"hasMore"`
}

// Service - 갤러리 조회/저장/삭제/즐겨찾기
type Service struct {
	artworks    store.ArtworkStore
	promptGuard bool
}

// NewService - promptGuard가 true면 저장 전에 프롬프트 금지어 검사
func NewService(artworks store.ArtworkStore, promptGuard bool) *Service {
	return &Service{artworks: artworks, promptGuard: promptGuard}
}

// List - 필터 + 페이지네이션
func (s *Service) List(ctx context.Context, filter model.ArtworkFilter, limit, offset int) (*Page, error) {
	artworks, total, err := s.artworks.FindArtworks(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery: %w", err)
	}

	return &Page{
		Artworks: artworks,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
		HasMore:  model.HasMore(offset, limit, total),
	}, nil
}

// Get - 단건 조회
func (s *Service) Get(ctx context.Context, id string) (*model.Artwork, error) {
	artwork, err := s.artworks.FindArtworkByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artwork details: %w", err)
	}
	return artwork, nil
}

// Save - 이미 만들어진 이미지를 그대로 저장
func (s *Service) Save(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	if s.promptGuard {
		if err := imagegen.ValidatePrompt(artwork.Prompt); err != nil {
			return nil, err
		}
	}

	saved, err := s.artworks.CreateArtwork(ctx, artwork)
	if err != nil {
		return nil, fmt.Errorf("failed to save artwork: %w", err)
	}

	logger.Infof("🖼️  Artwork saved to gallery: %s", saved.ID)
	return saved, nil
}

// Delete - 없는 id면 ErrNotFound
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.artworks.DeleteArtwork(ctx, id); err != nil {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	logger.Infof("🗑️  Artwork deleted: %s", id)
	return nil
}

// ToggleFavorite - isFavorite 반전 (저장소에서 원자적으로)
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*model.Artwork, error) {
	updated, err := s.artworks.UpdateArtwork(ctx, id, model.ArtworkPatch{ToggleFavorite: true})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	logger.Infof("⭐ Favorite toggled for artwork %s: %v", id, updated.IsFavorite)
	return updated, nil
}
