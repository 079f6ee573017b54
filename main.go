package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"art-therapy-server/modules/art"
	"art-therapy-server/modules/common/config"
	"art-therapy-server/modules/common/database"
	"art-therapy-server/modules/common/gemini"
	"art-therapy-server/modules/common/logger"
	commonredis "art-therapy-server/modules/common/redis"
	"art-therapy-server/modules/common/sqlite"
	"art-therapy-server/modules/common/store"
	"art-therapy-server/modules/gallery"
	"art-therapy-server/modules/imagegen"
	"art-therapy-server/modules/mood"
	"art-therapy-server/modules/prompt"
)

const (
	serviceName     = "art-therapy-server"
	shutdownTimeout = 15 * time.Second
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// openStores - STORAGE_BACKEND에 따라 저장소 선택
func openStores(cfg *config.Config) (store.ArtworkStore, store.MoodStore, func(), error) {
	if cfg.StorageBackend == config.StorageSupabase {
		client, err := database.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		if err != nil {
			return nil, nil, nil, err
		}
		return client, client, func() {}, nil
	}

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, nil, err
	}
	return db, db, func() {
		if err := db.Close(); err != nil {
			logger.Warnf("⚠️  Failed to close database: %v", err)
		}
	}, nil
}

// newTextGenerator - 키가 없거나 초기화 실패면 nil (fallback 프롬프트만 사용)
func newTextGenerator(ctx context.Context, cfg *config.Config) prompt.TextGenerator {
	if cfg.GeminiAPIKey == "" {
		logger.Warnf("⚠️  GEMINI_API_KEY not configured, prompts will use the fallback table")
		return nil
	}

	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warnf("⚠️  Gemini unavailable, prompts will use the fallback table: %v", err)
		return nil
	}
	return client
}

// newImageProvider - IMAGE_PROVIDER에 따라 provider 선택
func newImageProvider(cfg *config.Config) imagegen.Provider {
	if cfg.ImageProvider == config.ImageProviderOpenAI {
		if cfg.OpenAIAPIKey == "" {
			logger.Warnf("⚠️  OPENAI_API_KEY not configured")
		}
		return imagegen.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIImageModel, "")
	}

	if cfg.StabilityAPIKey == "" {
		logger.Warnf("⚠️  STABILITY_API_KEY not configured")
	}
	return imagegen.NewStabilityProvider(cfg.StabilityAPIKey, cfg.StabilityAPIURL)
}

func newRouter(artHandler *art.Handler, galleryHandler *gallery.Handler, moodHandler *mood.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	artHandler.RegisterRoutes(r)
	galleryHandler.RegisterRoutes(r)
	moodHandler.RegisterRoutes(r)

	return r
}

func main() {
	// 설정 로드 전 기본 콘솔 로거
	logger.Init(false, "")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("❌ Failed to load config: %v", err)
	}

	logger.Init(cfg.IsDevelopment(), cfg.LogFile)
	defer logger.Sync()

	ctx := context.Background()

	// 저장소
	artworks, moods, closeStore, err := openStores(cfg)
	if err != nil {
		logger.Fatalf("❌ Failed to open storage (%s): %v", cfg.StorageBackend, err)
	}
	defer closeStore()

	// 요청 상태 추적 (선택)
	var statuses art.StatusTracker
	if cfg.RedisEnabled() {
		if rdb := commonredis.Connect(cfg); rdb != nil {
			statuses = commonredis.NewStatusStore(rdb)
			defer rdb.Close()
		} else {
			logger.Warnf("⚠️  Redis unavailable, /art/status will report the default status")
		}
	}

	// AI 서비스
	enhancer := prompt.NewEnhancer(newTextGenerator(ctx, cfg))
	generator := imagegen.NewGenerator(newImageProvider(cfg), cfg.IsDevelopment())

	// 모듈 초기화
	artService := art.NewService(enhancer, generator, artworks, statuses, generator.Model())
	r := newRouter(
		art.NewHandler(artService),
		gallery.NewHandler(gallery.NewService(artworks, cfg.GalleryPromptGuard)),
		mood.NewHandler(mood.NewService(moods)),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 종료 시그널 처리
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Infof("🛑 Received interrupt signal. Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("❌ Graceful shutdown failed: %v", err)
		}
	}()

	logger.Infof("🚀 Art Therapy Server starting on port %s", cfg.Port)
	logger.Infof("❤️  Health check: http://localhost:%s/health", cfg.Port)
	logger.Infof("🎨 Art: POST /art/generate, GET /art/status/{requestId}")
	logger.Infof("🖼️  Gallery: /gallery, /gallery/{artworkId}, /gallery/{artworkId}/favorite")
	logger.Infof("📝 Mood: /mood/journal, /mood/analytics")

	// 서버 시작
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("❌ Server failed to start: %v", err)
		return
	}

	logger.Infof("👋 Server stopped")
}
