package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"art-therapy-server/modules/common/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	ImageProviderStability = "stability"
	ImageProviderOpenAI    = "openai"

	StorageSQLite   = "sqlite"
	StorageSupabase = "supabase"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Server
	Port    string
	AppEnv  string
	LogFile string

	// Gemini API (프롬프트 강화)
	GeminiAPIKey string
	GeminiModel  string

	// 이미지 생성
	ImageProvider    string
	StabilityAPIKey  string
	StabilityAPIURL  string
	OpenAIAPIKey     string
	OpenAIImageModel string

	// Storage
	StorageBackend     string
	DatabasePath       string
	SupabaseURL        string
	SupabaseServiceKey string

	// 갤러리 직접 저장 시 프롬프트 금지어 검사 (기본 꺼짐)
	GalleryPromptGuard bool

	// Redis (요청 상태 추적, 선택)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool
}

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		logger.Warnf("⚠️  .env file not found, using environment variables")
	}

	cfg := FromEnv()

	// 필수 환경변수 검증
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Infof("✅ Configuration loaded successfully")
	logger.Infof("   Env: %s (placeholder fallback: %v)", cfg.AppEnv, cfg.IsDevelopment())
	logger.Infof("   Gemini: %s (key set: %v)", cfg.GeminiModel, cfg.GeminiAPIKey != "")
	logger.Infof("   Image provider: %s", cfg.ImageProvider)
	logger.Infof("   Storage: %s", cfg.StorageBackend)
	if cfg.GalleryPromptGuard {
		logger.Infof("   Gallery prompt guard: on")
	}
	if cfg.RedisEnabled() {
		logger.Infof("   Redis: %s (TLS: %v)", cfg.GetRedisAddr(), cfg.RedisUseTLS)
	}

	return cfg, nil
}

// FromEnv - .env 로드 없이 현재 환경변수만으로 Config 생성
func FromEnv() *Config {
	// Redis UseTLS 파싱
	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	appEnv := getEnv("APP_ENV", getEnv("NODE_ENV", EnvProduction))

	promptGuard, _ := strconv.ParseBool(os.Getenv("GALLERY_PROMPT_GUARD"))

	return &Config{
		// Server
		Port:    getEnv("PORT", "8080"),
		AppEnv:  strings.ToLower(appEnv),
		LogFile: getEnv("LOG_FILE", ""),

		// Gemini API
		GeminiAPIKey: getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// 이미지 생성
		ImageProvider:    strings.ToLower(getEnv("IMAGE_PROVIDER", ImageProviderStability)),
		StabilityAPIKey:  getEnv("STABILITY_API_KEY", ""),
		StabilityAPIURL:  getEnv("STABILITY_API_URL", "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),

		// Storage
		StorageBackend:     strings.ToLower(getEnv("STORAGE_BACKEND", StorageSQLite)),
		DatabasePath:       getEnv("DATABASE_PATH", "data/art-therapy.db"),
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),

		GalleryPromptGuard: promptGuard,

		// Redis
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,
	}
}

// validate - 필수 환경변수 검증
// AI 키가 없어도 서버는 뜬다 (프롬프트는 fallback, 이미지는 개발 모드 placeholder)
func (c *Config) validate() error {
	switch c.ImageProvider {
	case ImageProviderStability, ImageProviderOpenAI:
	default:
		return fmt.Errorf("IMAGE_PROVIDER must be %q or %q, got %q", ImageProviderStability, ImageProviderOpenAI, c.ImageProvider)
	}

	switch c.StorageBackend {
	case StorageSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required for sqlite storage")
		}
	case StorageSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageSQLite, StorageSupabase, c.StorageBackend)
	}

	return nil
}

// IsDevelopment - placeholder 이미지 fallback 허용 여부
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// RedisEnabled - REDIS_HOST가 설정된 경우에만 상태 추적 사용
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
