package response

import (
	"encoding/json"
	"net/http"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/logger"
)

// Envelope - 모든 JSON 응답의 공통 구조
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON - 상태 코드와 함께 JSON 응답 작성
func JSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("❌ Failed to encode response: %v", err)
	}
}

// Success - 200 {success:true, data, message}
func Success(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error - {success:false, error, message}
// 내부 스택은 노출하지 않고 메시지 문자열만 전달
func Error(w http.ResponseWriter, status int, errorTitle string, message string) {
	JSON(w, status, Envelope{
		Success: false,
		Error:   errorTitle,
		Message: message,
	})
}

// ValidationFailed - 400 {success:false, error:"Validation failed", message}
func ValidationFailed(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, "Validation failed", message)
}

// FromError - 에러 분류에 맞는 상태 코드로 응답
func FromError(w http.ResponseWriter, errorTitle string, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusBadRequest {
		errorTitle = "Validation failed"
	}
	Error(w, status, errorTitle, err.Error())
}
