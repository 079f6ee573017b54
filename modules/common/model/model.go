package model

import (
	"strings"
	"time"
)

// Emotion 상수 - 허용되는 감정 목록 (고정)
const (
	EmotionHappy    = "happy"
	EmotionSad      = "sad"
	EmotionAngry    = "angry"
	EmotionAnxious  = "anxious"
	EmotionCalm     = "calm"
	EmotionConfused = "confused"
	EmotionExcited  = "excited"
)

// Emotions - 검증 메시지에 쓰이는 순서 그대로 유지
var Emotions = []string{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionAnxious,
	EmotionCalm,
	EmotionConfused,
	EmotionExcited,
}

var emotionSet = func() map[string]bool {
	set := make(map[string]bool, len(Emotions))
	for _, e := range Emotions {
		set[e] = true
	}
	return set
}()

// IsValidEmotion - 소문자 정규화된 감정이 허용 목록에 있는지 확인
func IsValidEmotion(emotion string) bool {
	return emotionSet[emotion]
}

// NormalizeEmotion - trim + 소문자
func NormalizeEmotion(emotion string) string {
	return strings.ToLower(strings.TrimSpace(emotion))
}

// 생성 상태
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// 필드 길이 제한
const (
	MaxDescriptionLength = 1000
	MaxFocusWordLength   = 100
	MaxStyleLength       = 100
	MaxNotesLength       = 2000
	MaxTagLength         = 50

	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5
)

// ArtworkMetadata - 생성 실행 정보
type ArtworkMetadata struct {
	RequestID     string                 `json:"requestId,omitempty"`
	Model         string                 `json:"model,omitempty"`
	Size          string                 `json:"size,omitempty"` // "1024x1024"
	IsPlaceholder bool                   `json:"isPlaceholder"`
	Seed          *int64                 `json:"seed,omitempty"`
	Extra         map[string]interface{} `json:"extra,omitempty"` // provider별 추가 필드
}

// Artwork - 생성된 작품 레코드
type Artwork struct {
	ID             string          `json:"id"`
	ImageURL       string          `json:"imageUrl"`
	Prompt         string          `json:"prompt"`
	OriginalPrompt string          `json:"originalPrompt,omitempty"`
	Emotion        string          `json:"emotion,omitempty"`
	FocusWord      string          `json:"focusWord,omitempty"`
	Style          string          `json:"style,omitempty"`
	Metadata       ArtworkMetadata `json:"metadata"`
	IsFavorite     bool            `json:"isFavorite"`
	Tags           []string        `json:"tags"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ArtworkFilter - 갤러리 조회 조건 (모두 선택)
type ArtworkFilter struct {
	Emotion  string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ArtworkPatch - 부분 업데이트 (현재는 즐겨찾기만)
// ToggleFavorite가 true면 IsFavorite는 무시하고 저장소가 현재 값을 반전
type ArtworkPatch struct {
	IsFavorite     *bool
	ToggleFavorite bool
}

// MoodEntry - 감정 일기 레코드
type MoodEntry struct {
	ID          string    `json:"id"`
	Emotion     string    `json:"emotion"`
	Description string    `json:"description,omitempty"`
	Intensity   int       `json:"intensity"`
	Notes       string    `json:"notes,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArtInput - 작품 생성 입력 (emotion/description 중 하나 이상 필수)
type ArtInput struct {
	Emotion     string `json:"emotion,omitempty"`
	Description string `json:"description,omitempty"`
	FocusWord   string `json:"focusWord,omitempty"`
	Style       string `json:"style,omitempty"`
}

// MoodInput - 감정 일기 입력. Intensity 0이면 기본값 사용
type MoodInput struct {
	Emotion     string
	Description string
	Intensity   int
	Notes       string
}

// HasMore - offset+limit < total
func HasMore(offset, limit, total int) bool {
	return offset+limit < total
}
