package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/model"
)

// 페이지네이션 제한
const (
	MinLimit = 1
	MaxLimit = 100
)

const dateLayout = "2006-01-02"

// ArtRequest - POST /art/generate 요청 바디
type ArtRequest struct {
	Emotion     string `json:"emotion"`
	Description string `json:"description"`
	FocusWord   string `json:"focusWord"`
	Style       string `json:"style"`
}

// MoodRequest - POST /mood/journal 요청 바디
// intensity는 숫자 또는 숫자 문자열 모두 허용
type MoodRequest struct {
	Emotion     string       `json:"emotion"`
	Description string       `json:"description"`
	Intensity   *json.Number `json:"intensity"`
	Notes       string       `json:"notes"`
}

func invalidEmotionMessage() string {
	return fmt.Sprintf("Invalid emotion. Must be one of: %s", strings.Join(model.Emotions, ", "))
}

func tooLong(value string, max int) bool {
	return utf8.RuneCountInString(value) > max
}

// ValidateEmotion - 정규화 후 허용 목록 확인. 빈 값은 그대로 통과
func ValidateEmotion(raw string) (string, error) {
	emotion := model.NormalizeEmotion(raw)
	if emotion == "" {
		return "", nil
	}
	if !model.IsValidEmotion(emotion) {
		return "", apperror.Validation(invalidEmotionMessage())
	}
	return emotion, nil
}

// ValidateArtRequest - 작품 생성 요청 검증 + 정규화
func ValidateArtRequest(req ArtRequest) (model.ArtInput, error) {
	input := model.ArtInput{
		Description: strings.TrimSpace(req.Description),
		FocusWord:   strings.TrimSpace(req.FocusWord),
		Style:       strings.TrimSpace(req.Style),
	}

	// emotion 또는 description 중 하나는 필수
	if strings.TrimSpace(req.Emotion) == "" && input.Description == "" {
		return model.ArtInput{}, apperror.Validation("Either emotion or description must be provided")
	}

	emotion, err := ValidateEmotion(req.Emotion)
	if err != nil {
		return model.ArtInput{}, err
	}
	input.Emotion = emotion

	if tooLong(input.Description, model.MaxDescriptionLength) {
		return model.ArtInput{}, apperror.Validation(fmt.Sprintf("Description must be at most %d characters", model.MaxDescriptionLength))
	}
	if tooLong(input.FocusWord, model.MaxFocusWordLength) {
		return model.ArtInput{}, apperror.Validation(fmt.Sprintf("Focus word must be at most %d characters", model.MaxFocusWordLength))
	}
	if tooLong(input.Style, model.MaxStyleLength) {
		return model.ArtInput{}, apperror.Validation(fmt.Sprintf("Style must be at most %d characters", model.MaxStyleLength))
	}

	return input, nil
}

// ValidateMoodRequest - 감정 일기 요청 검증 + 정규화
func ValidateMoodRequest(req MoodRequest) (model.MoodInput, error) {
	if strings.TrimSpace(req.Emotion) == "" {
		return model.MoodInput{}, apperror.Validation("Emotion is required")
	}

	emotion, err := ValidateEmotion(req.Emotion)
	if err != nil {
		return model.MoodInput{}, err
	}

	input := model.MoodInput{
		Emotion:     emotion,
		Description: strings.TrimSpace(req.Description),
		Notes:       strings.TrimSpace(req.Notes),
	}

	if req.Intensity != nil {
		intensity, err := parseIntensity(*req.Intensity)
		if err != nil {
			return model.MoodInput{}, err
		}
		input.Intensity = intensity
	}

	if tooLong(input.Description, model.MaxDescriptionLength) {
		return model.MoodInput{}, apperror.Validation(fmt.Sprintf("Description must be at most %d characters", model.MaxDescriptionLength))
	}
	if tooLong(input.Notes, model.MaxNotesLength) {
		return model.MoodInput{}, apperror.Validation(fmt.Sprintf("Notes must be at most %d characters", model.MaxNotesLength))
	}

	return input, nil
}

// parseIntensity - 1~10 정수만 허용 (5.0은 허용, 5.5는 거부)
func parseIntensity(n json.Number) (int, error) {
	invalid := apperror.Validation(fmt.Sprintf("Intensity must be a number between %d and %d", model.MinIntensity, model.MaxIntensity))

	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, invalid
	}
	if f < model.MinIntensity || f > model.MaxIntensity {
		return 0, invalid
	}
	return int(f), nil
}

// ParsePagination - limit/offset 쿼리 파싱 (없으면 기본값)
func ParsePagination(query url.Values, defaultLimit int) (limit int, offset int, err error) {
	limit = defaultLimit
	offset = 0

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, convErr := strconv.Atoi(raw)
		if convErr != nil || parsed < MinLimit || parsed > MaxLimit {
			return 0, 0, apperror.Validation(fmt.Sprintf("Limit must be a number between %d and %d", MinLimit, MaxLimit))
		}
		limit = parsed
	}

	if raw := strings.TrimSpace(query.Get("offset")); raw != "" {
		parsed, convErr := strconv.Atoi(raw)
		if convErr != nil || parsed < 0 {
			return 0, 0, apperror.Validation("Offset must be a non-negative number")
		}
		offset = parsed
	}

	return limit, offset, nil
}

// ArtworkRequest - POST /gallery 요청 바디 (AI 호출 없이 직접 저장)
type ArtworkRequest struct {
	ImageURL       string                 `json:"imageUrl"`
	Prompt         string                 `json:"prompt"`
	OriginalPrompt string                 `json:"originalPrompt"`
	Emotion        string                 `json:"emotion"`
	FocusWord      string                 `json:"focusWord"`
	Style          string                 `json:"style"`
	Tags           []string               `json:"tags"`
	Metadata       *model.ArtworkMetadata `json:"metadata"`
}

// ValidateArtworkRequest - 필수 필드/길이 검증 후 저장할 Artwork 생성
func ValidateArtworkRequest(req ArtworkRequest) (*model.Artwork, error) {
	artwork := &model.Artwork{
		ImageURL:       strings.TrimSpace(req.ImageURL),
		Prompt:         strings.TrimSpace(req.Prompt),
		OriginalPrompt: strings.TrimSpace(req.OriginalPrompt),
		FocusWord:      strings.TrimSpace(req.FocusWord),
		Style:          strings.TrimSpace(req.Style),
		Tags:           []string{},
	}

	if artwork.ImageURL == "" {
		return nil, apperror.Validation("Image URL is required")
	}
	if artwork.Prompt == "" {
		return nil, apperror.Validation("Prompt is required")
	}

	emotion, err := ValidateEmotion(req.Emotion)
	if err != nil {
		return nil, err
	}
	artwork.Emotion = emotion

	if tooLong(artwork.FocusWord, model.MaxFocusWordLength) {
		return nil, apperror.Validation(fmt.Sprintf("Focus word must be at most %d characters", model.MaxFocusWordLength))
	}
	if tooLong(artwork.Style, model.MaxStyleLength) {
		return nil, apperror.Validation(fmt.Sprintf("Style must be at most %d characters", model.MaxStyleLength))
	}

	for _, tag := range req.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if tooLong(tag, model.MaxTagLength) {
			return nil, apperror.Validation(fmt.Sprintf("Tags must be at most %d characters", model.MaxTagLength))
		}
		artwork.Tags = append(artwork.Tags, tag)
	}

	if req.Metadata != nil {
		artwork.Metadata = *req.Metadata
	}

	return artwork, nil
}

// ParseDate - RFC3339 또는 YYYY-MM-DD
// endOfDay가 true면 날짜만 있는 값은 그날 마지막 순간으로 (dateTo 포함 범위용)
func ParseDate(field, raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("%s must be an RFC3339 timestamp or YYYY-MM-DD date", field))
	}
	if endOfDay {
		day = day.Add(24*time.Hour - time.Nanosecond)
	}
	return &day, nil
}
