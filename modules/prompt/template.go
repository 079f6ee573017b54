package prompt

import "strings"

// systemTemplate - 치료용 아트 프롬프트 생성 지시문 (few-shot 예시 2개 포함)
const systemTemplate = "You are a therapeutic art prompt generator. Your role is to transform user emotions and descriptions into detailed, therapeutic art prompts that will guide AI image generation.\n\n" +
	"Guidelines:\n" +
	"- Create prompts that are therapeutic and healing-focused\n" +
	"- Use vivid, descriptive language that evokes emotions\n" +
	"- Include artistic style suggestions that match the emotional tone\n" +
	"- Keep prompts under 400 characters\n" +
	"- Focus on positive, healing imagery even for difficult emotions\n" +
	"- Use metaphors and symbolic language when appropriate\n\n" +
	"Examples:\n" +
	"Input: \"I feel overwhelmed\"\n" +
	"Output: \"A serene mountain landscape with gentle mist, soft watercolor style, peaceful and calming, representing finding clarity through nature\"\n\n" +
	"Input: \"I'm angry\"\n" +
	"Output: \"A powerful storm clearing away dark clouds, dynamic brushstrokes, red and orange colors transforming to blue and white, symbolizing release and renewal\""

// BuildUserInput - 비어있지 않은 필드만 한 줄씩 ("Emotion: ...")
func BuildUserInput(emotion, description, focusWord, style string) string {
	var lines []string

	if emotion = strings.TrimSpace(emotion); emotion != "" {
		lines = append(lines, "Emotion: "+emotion)
	}
	if description = strings.TrimSpace(description); description != "" {
		lines = append(lines, "Description: "+description)
	}
	if focusWord = strings.TrimSpace(focusWord); focusWord != "" {
		lines = append(lines, "Focus word: "+focusWord)
	}
	if style = strings.TrimSpace(style); style != "" {
		lines = append(lines, "Style preference: "+style)
	}

	return strings.Join(lines, "\n")
}

// BuildRequest - 지시문 + 사용자 입력 + 생성 요청 문구
func BuildRequest(userInput string) string {
	return systemTemplate + "\n\nUser Input: " + userInput + "\n\nGenerate a therapeutic art prompt:"
}
