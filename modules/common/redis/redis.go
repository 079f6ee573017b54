package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"art-therapy-server/modules/common/config"
	"art-therapy-server/modules/common/logger"
)

const (
	statusKeyPrefix = "art:status:"
	StatusTTL       = 24 * time.Hour
)

// Connect - Redis 연결 생성 (실패 시 nil)
func Connect(cfg *config.Config) *redis.Client {
	logger.Infof("🔌 Connecting to Redis: %s", cfg.GetRedisAddr())

	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	// 연결 테스트
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Infof("🔍 Testing Redis connection...")
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Errorf("❌ Redis ping failed: %v", err)
		_ = rdb.Close()
		return nil
	}

	logger.Infof("✅ Redis connected")
	return rdb
}

// StatusStore - requestId별 생성 상태 (art:status:<requestId>, 24시간 TTL)
type StatusStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatusStore - 상태 저장소 생성
func NewStatusStore(rdb *redis.Client) *StatusStore {
	return &StatusStore{rdb: rdb, ttl: StatusTTL}
}

// SetStatus - 상태 기록 (TTL 갱신)
func (s *StatusStore) SetStatus(ctx context.Context, requestID, status string) error {
	if err := s.rdb.Set(ctx, statusKeyPrefix+requestID, status, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set status for %s: %w", requestID, err)
	}
	return nil
}

// GetStatus - 상태 조회. 키가 없으면 found=false
func (s *StatusStore) GetStatus(ctx context.Context, requestID string) (string, bool, error) {
	status, err := s.rdb.Get(ctx, statusKeyPrefix+requestID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get status for %s: %w", requestID, err)
	}
	return status, true, nil
}
