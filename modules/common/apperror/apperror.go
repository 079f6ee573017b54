package apperror

import (
	"errors"
	"net/http"
)

// 에러 분류 - 서비스 레이어는 fmt.Errorf("...: %w")로 감싸서 반환
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUpstream    = errors.New("upstream service error")
	ErrPersistence = errors.New("persistence error")
)

// ValidationError - 클라이언트에 그대로 보여줄 검증 메시지
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation - ValidationError 생성
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// HTTPStatus - 에러 분류별 HTTP 상태 코드
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
