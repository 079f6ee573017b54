package imagegen

import "time"

const (
	// MaxPromptLength - 이 길이를 넘으면 잘라서 전송
	MaxPromptLength = 500

	// ImageSize - 모든 provider 공통 출력 크기
	ImageSize = "1024x1024"
)

// Image - provider 한 번 호출 결과
type Image struct {
	// DataURL - "data:image/png;base64,..." 또는 원격 URL
	DataURL       string
	RevisedPrompt string
	Seed          *int64
}

// Result - 생성기 반환값
type Result struct {
	URL           string    `json:"url"`
	Size          string    `json:"size"`
	RevisedPrompt string    `json:"revisedPrompt"`
	CreatedAt     time.Time `json:"createdAt"`
	Seed          *int64    `json:"seed,omitempty"`
	Model         string    `json:"model"`
	IsPlaceholder bool      `json:"isPlaceholder"`
}

// stabilityRequest - Stability text-to-image 요청 바디
type stabilityRequest struct {
	TextPrompts []stabilityTextPrompt `json:"text_prompts"`
	CfgScale    int                   `json:"cfg_scale"`
	Height      int                   `json:"height"`
	Width       int                   `json:"width"`
	Samples     int                   `json:"samples"`
	Steps       int                   `json:"steps"`
	StylePreset string                `json:"style_preset"`
}

type stabilityTextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// stabilityResponse - artifacts[0].base64 / seed 사용
type stabilityResponse struct {
	Artifacts []struct {
		Base64       string `json:"base64"`
		Seed         *int64 `json:"seed"`
		FinishReason string `json:"finishReason"`
	} `json:"artifacts"`
	Message string `json:"message,omitempty"`
}
