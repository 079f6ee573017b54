package database

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/logger"
	"art-therapy-server/modules/common/model"
)

const (
	artworksTable    = "artworks"
	moodEntriesTable = "mood_entries"

	maxToggleAttempts = 3
)

// Client - Supabase(PostgREST) 기반 작품/감정 일기 저장소
type Client struct {
	supabase *supabase.Client
	now      func() time.Time
}

// NewClient - Database 클라이언트 생성
func NewClient(url, serviceKey string) (*Client, error) {
	supabaseClient, err := supabase.NewClient(url, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	logger.Infof("✅ Supabase client created: %s", url)
	return &Client{
		supabase: supabaseClient,
		now:      time.Now,
	}, nil
}

// artworkRow - artworks 테이블 행 (snake_case 컬럼)
type artworkRow struct {
	ID             string                `json:"id"`
	ImageURL       string                `json:"image_url"`
	Prompt         string                `json:"prompt"`
	OriginalPrompt string                `json:"original_prompt"`
	Emotion        string                `json:"emotion"`
	FocusWord      string                `json:"focus_word"`
	Style          string                `json:"style"`
	Metadata       model.ArtworkMetadata `json:"metadata"`
	IsFavorite     bool                  `json:"is_favorite"`
	Tags           []string              `json:"tags"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func (r artworkRow) toModel() model.Artwork {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Artwork{
		ID:             r.ID,
		ImageURL:       r.ImageURL,
		Prompt:         r.Prompt,
		OriginalPrompt: r.OriginalPrompt,
		Emotion:        r.Emotion,
		FocusWord:      r.FocusWord,
		Style:          r.Style,
		Metadata:       r.Metadata,
		IsFavorite:     r.IsFavorite,
		Tags:           tags,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

// moodRow - mood_entries 테이블 행
type moodRow struct {
	ID          string    `json:"id"`
	Emotion     string    `json:"emotion"`
	Description string    `json:"description"`
	Intensity   int       `json:"intensity"`
	Notes       string    `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r moodRow) toModel() model.MoodEntry {
	return model.MoodEntry{
		ID:          r.ID,
		Emotion:     r.Emotion,
		Description: r.Description,
		Intensity:   r.Intensity,
		Notes:       r.Notes,
		Timestamp:   r.Timestamp.UTC(),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// CreateArtwork - artworks 테이블에 작품 저장
func (c *Client) CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	now := c.now().UTC()
	row := artworkRow{
		ID:             uuid.NewString(),
		ImageURL:       artwork.ImageURL,
		Prompt:         artwork.Prompt,
		OriginalPrompt: artwork.OriginalPrompt,
		Emotion:        artwork.Emotion,
		FocusWord:      artwork.FocusWord,
		Style:          artwork.Style,
		Metadata:       artwork.Metadata,
		IsFavorite:     artwork.IsFavorite,
		Tags:           artwork.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if row.Tags == nil {
		row.Tags = []string{}
	}

	logger.Debugf("💾 Inserting artwork %s into Supabase", row.ID)

	var inserted []artworkRow
	data, _, err := c.supabase.From(artworksTable).
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert artwork: %w: %w", apperror.ErrPersistence, err)
	}
	if err := json.Unmarshal(data, &inserted); err != nil {
		logger.Warnf("⚠️  Failed to decode inserted artwork %s, returning local row: %v", row.ID, err)
		created := row.toModel()
		return &created, nil
	}
	if len(inserted) == 0 {
		// representation이 비어있으면 보낸 값 그대로 반환
		created := row.toModel()
		return &created, nil
	}

	created := inserted[0].toModel()
	return &created, nil
}

// FindArtworkByID - id로 단건 조회
func (c *Client) FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error) {
	var rows []artworkRow

	data, _, err := c.supabase.From(artworksTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query artwork: %w: %w", apperror.ErrPersistence, err)
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse artwork response: %w: %w", apperror.ErrPersistence, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}

	artwork := rows[0].toModel()
	return &artwork, nil
}

// FindArtworks - 필터 + created_at 내림차순 페이지 (total은 Content-Range의 exact count)
func (c *Client) FindArtworks(ctx context.Context, filter model.ArtworkFilter, limit, offset int) ([]model.Artwork, int, error) {
	query := c.supabase.From(artworksTable).Select("*", "exact", false)

	if filter.Emotion != "" {
		query = query.Eq("emotion", filter.Emotion)
	}
	// 같은 컬럼 필터는 파라미터 키가 겹치므로 양쪽 범위는 and=(...)로 보냄
	switch {
	case filter.DateFrom != nil && filter.DateTo != nil:
		query = query.And(fmt.Sprintf(`created_at.gte.%q,created_at.lte.%q`,
			formatTime(*filter.DateFrom), formatTime(*filter.DateTo)), "")
	case filter.DateFrom != nil:
		query = query.Gte("created_at", formatTime(*filter.DateFrom))
	case filter.DateTo != nil:
		query = query.Lte("created_at", formatTime(*filter.DateTo))
	}

	data, count, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query artworks: %w: %w", apperror.ErrPersistence, err)
	}

	var rows []artworkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to parse artworks response: %w: %w", apperror.ErrPersistence, err)
	}

	artworks := make([]model.Artwork, 0, len(rows))
	for _, row := range rows {
		artworks = append(artworks, row.toModel())
	}
	return artworks, int(count), nil
}

// UpdateArtwork - patch에 지정된 필드만 변경
func (c *Client) UpdateArtwork(ctx context.Context, id string, patch model.ArtworkPatch) (*model.Artwork, error) {
	if patch.ToggleFavorite {
		return c.toggleFavorite(ctx, id)
	}
	if patch.IsFavorite == nil {
		return c.FindArtworkByID(ctx, id)
	}

	rows, err := c.patchArtwork(id, *patch.IsFavorite, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}

	artwork := rows[0].toModel()
	return &artwork, nil
}

// toggleFavorite - 읽은 값이 그대로일 때만 반전, 다른 요청이 먼저 바꿨으면 다시 읽고 재시도
func (c *Client) toggleFavorite(ctx context.Context, id string) (*model.Artwork, error) {
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		current, err := c.FindArtworkByID(ctx, id)
		if err != nil {
			return nil, err
		}

		rows, err := c.patchArtwork(id, !current.IsFavorite, &current.IsFavorite)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			artwork := rows[0].toModel()
			return &artwork, nil
		}

		logger.Warnf("⚠️  Favorite for artwork %s changed concurrently, retrying (%d/%d)", id, attempt, maxToggleAttempts)
	}

	return nil, fmt.Errorf("failed to toggle favorite for %s after %d attempts: %w", id, maxToggleAttempts, apperror.ErrPersistence)
}

// patchArtwork - is_favorite 갱신. expect가 있으면 현재 값이 같은 행만 갱신
func (c *Client) patchArtwork(id string, favorite bool, expect *bool) ([]artworkRow, error) {
	updateData := map[string]interface{}{
		"is_favorite": favorite,
		"updated_at":  formatTime(c.now()),
	}

	query := c.supabase.From(artworksTable).
		Update(updateData, "representation", "").
		Eq("id", id)
	if expect != nil {
		query = query.Eq("is_favorite", strconv.FormatBool(*expect))
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w: %w", apperror.ErrPersistence, err)
	}

	var rows []artworkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse update response: %w: %w", apperror.ErrPersistence, err)
	}
	return rows, nil
}

// DeleteArtwork - 삭제된 행이 없으면 ErrNotFound
func (c *Client) DeleteArtwork(ctx context.Context, id string) error {
	data, _, err := c.supabase.From(artworksTable).
		Delete("representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete artwork: %w: %w", apperror.ErrPersistence, err)
	}

	var rows []artworkRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse delete response: %w: %w", apperror.ErrPersistence, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}

	logger.Infof("🗑️  Artwork deleted: %s", id)
	return nil
}

// CreateMoodEntry - timestamp가 비어있으면 생성 시각 사용
func (c *Client) CreateMoodEntry(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	now := c.now().UTC()
	row := moodRow{
		ID:          uuid.NewString(),
		Emotion:     entry.Emotion,
		Description: entry.Description,
		Intensity:   entry.Intensity,
		Notes:       entry.Notes,
		Timestamp:   entry.Timestamp.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if entry.Timestamp.IsZero() {
		row.Timestamp = now
	}
	if row.Intensity == 0 {
		row.Intensity = model.DefaultIntensity
	}

	_, _, err := c.supabase.From(moodEntriesTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert mood entry: %w: %w", apperror.ErrPersistence, err)
	}

	created := row.toModel()
	return &created, nil
}

// FindMoodEntries - timestamp 내림차순 페이지
func (c *Client) FindMoodEntries(ctx context.Context, limit, offset int) ([]model.MoodEntry, int, error) {
	data, count, err := c.supabase.From(moodEntriesTable).
		Select("*", "exact", false).
		Order("timestamp", &postgrest.OrderOpts{Ascending: false}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query mood entries: %w: %w", apperror.ErrPersistence, err)
	}

	entries, err := decodeMoodRows(data)
	if err != nil {
		return nil, 0, err
	}
	return entries, int(count), nil
}

// FindMoodEntriesSince - 분석용 기간 조회
func (c *Client) FindMoodEntriesSince(ctx context.Context, cutoff time.Time) ([]model.MoodEntry, error) {
	data, _, err := c.supabase.From(moodEntriesTable).
		Select("*", "", false).
		Gte("timestamp", formatTime(cutoff)).
		Order("timestamp", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w: %w", apperror.ErrPersistence, err)
	}
	return decodeMoodRows(data)
}

func decodeMoodRows(data []byte) ([]model.MoodEntry, error) {
	var rows []moodRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse mood entries response: %w: %w", apperror.ErrPersistence, err)
	}

	entries := make([]model.MoodEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toModel())
	}
	return entries, nil
}

// formatTime - PostgREST 필터용 timestamptz 문자열
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
