// Package store defines the persistence contracts shared by the art, gallery
// and mood modules. Implementations live in common/sqlite and common/database.
package store

import (
	"context"
	"time"

	"art-therapy-server/modules/common/model"
)

// ArtworkStore - 작품 레코드 저장소
// 없는 id 조회/삭제/수정은 apperror.ErrNotFound를 감싸서 반환
type ArtworkStore interface {
	CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error)
	FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error)
	// FindArtworks - createdAt 내림차순, total은 필터 전체 개수
	FindArtworks(ctx context.Context, filter model.ArtworkFilter, limit, offset int) ([]model.Artwork, int, error)
	UpdateArtwork(ctx context.Context, id string, patch model.ArtworkPatch) (*model.Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error
}

// MoodStore - 감정 일기 저장소
type MoodStore interface {
	CreateMoodEntry(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error)
	// FindMoodEntries - timestamp 내림차순 페이지
	FindMoodEntries(ctx context.Context, limit, offset int) ([]model.MoodEntry, int, error)
	// FindMoodEntriesSince - timestamp >= cutoff, 내림차순
	FindMoodEntriesSince(ctx context.Context, cutoff time.Time) ([]model.MoodEntry, error)
}
