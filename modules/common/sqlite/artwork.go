package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/model"
)

const artworkColumns = `id, image_url, prompt, original_prompt, emotion, focus_word, style,
	metadata, is_favorite, tags, created_at, updated_at`

// CreateArtwork - id/createdAt/updatedAt은 저장소에서 부여
func (s *Store) CreateArtwork(ctx context.Context, artwork *model.Artwork) (*model.Artwork, error) {
	created := *artwork
	created.ID = uuid.NewString()
	now := s.now()
	created.CreatedAt = now.UTC()
	created.UpdatedAt = now.UTC()
	if created.Tags == nil {
		created.Tags = []string{}
	}

	metadataJSON, err := json.Marshal(created.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode artwork metadata: %w", err)
	}
	tagsJSON, err := json.Marshal(created.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode artwork tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO artworks (`+artworkColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.ImageURL, created.Prompt, created.OriginalPrompt,
		created.Emotion, created.FocusWord, created.Style,
		string(metadataJSON), boolToInt(created.IsFavorite), string(tagsJSON),
		toNanos(now), toNanos(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert artwork: %w: %w", apperror.ErrPersistence, err)
	}

	return &created, nil
}

// FindArtworkByID - 단건 조회
func (s *Store) FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+artworkColumns+` FROM artworks WHERE id = ?`, id)

	artwork, err := scanArtwork(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select artwork: %w: %w", apperror.ErrPersistence, err)
	}
	return artwork, nil
}

// FindArtworks - 필터 + createdAt 내림차순 페이지
func (s *Store) FindArtworks(ctx context.Context, filter model.ArtworkFilter, limit, offset int) ([]model.Artwork, int, error) {
	where, args := artworkWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artworks`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artworks: %w: %w", apperror.ErrPersistence, err)
	}

	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+artworkColumns+` FROM artworks`+where+` ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("select artworks: %w: %w", apperror.ErrPersistence, err)
	}
	defer rows.Close()

	artworks := []model.Artwork{}
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan artwork: %w: %w", apperror.ErrPersistence, err)
		}
		artworks = append(artworks, *artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate artworks: %w: %w", apperror.ErrPersistence, err)
	}

	return artworks, total, nil
}

// UpdateArtwork - patch에 지정된 필드만 변경
func (s *Store) UpdateArtwork(ctx context.Context, id string, patch model.ArtworkPatch) (*model.Artwork, error) {
	if patch.ToggleFavorite {
		return s.toggleFavorite(ctx, id)
	}
	if patch.IsFavorite == nil {
		return s.FindArtworkByID(ctx, id)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE artworks SET is_favorite = ?, updated_at = ? WHERE id = ?`,
		boolToInt(*patch.IsFavorite), toNanos(s.now()), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update artwork: %w: %w", apperror.ErrPersistence, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}

	return s.FindArtworkByID(ctx, id)
}

// toggleFavorite - 단일 UPDATE ... RETURNING으로 반전
func (s *Store) toggleFavorite(ctx context.Context, id string) (*model.Artwork, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE artworks SET is_favorite = 1 - is_favorite, updated_at = ? WHERE id = ? RETURNING `+artworkColumns,
		toNanos(s.now()), id,
	)

	artwork, err := scanArtwork(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w: %w", apperror.ErrPersistence, err)
	}
	return artwork, nil
}

// DeleteArtwork - 없는 id면 ErrNotFound
func (s *Store) DeleteArtwork(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete artwork: %w: %w", apperror.ErrPersistence, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete artwork: %w: %w", apperror.ErrPersistence, err)
	}
	if affected == 0 {
		return fmt.Errorf("artwork %s: %w", id, apperror.ErrNotFound)
	}
	return nil
}

func artworkWhere(filter model.ArtworkFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.Emotion != "" {
		clauses = append(clauses, "emotion = ?")
		args = append(args, filter.Emotion)
	}
	if filter.DateFrom != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, toNanos(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, toNanos(*filter.DateTo))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtwork(row rowScanner) (*model.Artwork, error) {
	var (
		artwork      model.Artwork
		metadataJSON string
		tagsJSON     string
		isFavorite   int
		createdAt    int64
		updatedAt    int64
	)

	err := row.Scan(
		&artwork.ID, &artwork.ImageURL, &artwork.Prompt, &artwork.OriginalPrompt,
		&artwork.Emotion, &artwork.FocusWord, &artwork.Style,
		&metadataJSON, &isFavorite, &tagsJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(metadataJSON), &artwork.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &artwork.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if artwork.Tags == nil {
		artwork.Tags = []string{}
	}

	artwork.IsFavorite = isFavorite != 0
	artwork.CreatedAt = fromNanos(createdAt)
	artwork.UpdatedAt = fromNanos(updatedAt)
	return &artwork, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
