package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/model"
)

const moodColumns = `id, emotion, description, intensity, notes, timestamp, created_at, updated_at`

// CreateMoodEntry - timestamp가 비어있으면 생성 시각 사용
func (s *Store) CreateMoodEntry(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	created := *entry
	created.ID = uuid.NewString()
	now := s.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Timestamp.IsZero() {
		created.Timestamp = now
	}
	if created.Intensity == 0 {
		created.Intensity = model.DefaultIntensity
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mood_entries (`+moodColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		created.ID, created.Emotion, created.Description, created.Intensity, created.Notes,
		toNanos(created.Timestamp), toNanos(now), toNanos(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert mood entry: %w: %w", apperror.ErrPersistence, err)
	}

	created.Timestamp = created.Timestamp.UTC()
	return &created, nil
}

// FindMoodEntries - timestamp 내림차순 페이지
func (s *Store) FindMoodEntries(ctx context.Context, limit, offset int) ([]model.MoodEntry, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mood_entries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mood entries: %w: %w", apperror.ErrPersistence, err)
	}

	entries, err := s.queryMoodEntries(ctx,
		`SELECT `+moodColumns+` FROM mood_entries ORDER BY timestamp DESC, rowid DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// FindMoodEntriesSince - 분석용 기간 조회
func (s *Store) FindMoodEntriesSince(ctx context.Context, cutoff time.Time) ([]model.MoodEntry, error) {
	return s.queryMoodEntries(ctx,
		`SELECT `+moodColumns+` FROM mood_entries WHERE timestamp >= ? ORDER BY timestamp DESC, rowid DESC`,
		toNanos(cutoff),
	)
}

func (s *Store) queryMoodEntries(ctx context.Context, query string, args ...interface{}) ([]model.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select mood entries: %w: %w", apperror.ErrPersistence, err)
	}
	defer rows.Close()

	entries := []model.MoodEntry{}
	for rows.Next() {
		var entry model.MoodEntry
		var timestamp, createdAt, updatedAt int64
		if err := rows.Scan(&entry.ID, &entry.Emotion, &entry.Description, &entry.Intensity, &entry.Notes,
			&timestamp, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w: %w", apperror.ErrPersistence, err)
		}
		entry.Timestamp = fromNanos(timestamp)
		entry.CreatedAt = fromNanos(createdAt)
		entry.UpdatedAt = fromNanos(updatedAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w: %w", apperror.ErrPersistence, err)
	}
	return entries, nil
}
