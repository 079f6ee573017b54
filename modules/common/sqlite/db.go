// Package sqlite is the default ArtworkStore / MoodStore backend: a single
// SQLite file in WAL mode whose schema is managed by embedded migrations.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // pure Go 드라이버 ("sqlite")

	"art-therapy-server/modules/common/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const busyTimeoutMs = 5000

// Store - SQLite 기반 작품/감정 일기 저장소
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open - DB 파일 생성(필요 시) + 마이그레이션 + 연결
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	// golang-migrate는 넘겨받은 연결을 닫으므로 별도 연결로 실행
	migrationConn, err := openConnection(path)
	if err != nil {
		return nil, err
	}
	if err := migrateUp(migrationConn); err != nil {
		return nil, err
	}

	db, err := openConnection(path)
	if err != nil {
		return nil, err
	}

	logger.Infof("✅ SQLite store ready: %s", path)
	return &Store{db: db, now: time.Now}, nil
}

// openConnection - WAL + busy_timeout, 단일 writer 연결
func openConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMs),
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// migrateUp - 미적용 마이그레이션 실행 (ErrNoChange는 정상)
func migrateUp(db *sql.DB) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{DatabaseName: "main"})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Ping - 헬스 체크용
func (s *Store) Ping() error {
	return s.db.Ping()
}

// Close - 연결 종료
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
